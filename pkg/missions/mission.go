package missions

type Status string

const (
	StatusPending Status = ""
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
)

func (s Status) Decided() bool {
	return s == StatusPass || s == StatusFail
}

// Template is an entry of the objective catalog.
type Template struct {
	ID        string
	Objective Objective

	// points per player count: 3, 4 and 5 players
	points [3]int
}

// Points returns the draft cost of the template for the given player count.
// Player counts outside of 3..5 are clamped.
func (t Template) Points(numPlayers int) int {
	index := numPlayers - 3
	if index < 0 {
		index = 0
	}
	if index >= len(t.points) {
		index = len(t.points) - 1
	}
	return t.points[index]
}

// HasSecretX reports whether the assignee chooses a hidden trick count while drafting.
func (t Template) HasSecretX() bool {
	_, ok := t.Objective.(SecretTrickCount)
	return ok
}

// XIsPublic reports whether the chosen trick count is visible to everyone.
func (t Template) XIsPublic() bool {
	secret, ok := t.Objective.(SecretTrickCount)
	return ok && secret.Public
}

func (t Template) Describe(numPlayers int) string {
	if t.Objective == nil {
		return ""
	}
	return t.Objective.describe(numPlayers)
}

// Mission is a template assigned to a player, with its runtime status.
type Mission struct {
	Template Template `json:"-"`
	ID       string   `json:"id"`
	Status   Status   `json:"status,omitempty"`

	// SecretX is the trick count chosen by the assignee.
	SecretX *int `json:"secretX,omitempty"`
	// X mirrors SecretX when it is public or seen by the assignee.
	X *int `json:"x,omitempty"`
}

func NewMission(template Template) *Mission {
	return &Mission{
		Template: template,
		ID:       template.ID,
	}
}

// Describe renders the objective, substituting X when it is known to the viewer.
func (m *Mission) Describe(numPlayers int) string {
	if secret, ok := m.Template.Objective.(SecretTrickCount); ok {
		return secret.describeWith(m.X)
	}
	return m.Template.Describe(numPlayers)
}

func (m *Mission) Clone() *Mission {
	if m == nil {
		return nil
	}
	clone := *m
	if m.SecretX != nil {
		x := *m.SecretX
		clone.SecretX = &x
	}
	if m.X != nil {
		x := *m.X
		clone.X = &x
	}
	return &clone
}
