package protocol

import "github.com/pkg/errors"

// HintType tells where the signalled card sits among the same-suit cards in the hand.
type HintType string

const (
	HintTop    HintType = "top"
	HintOnly   HintType = "only"
	HintBottom HintType = "bottom"
)

var ErrInvalidHintType = errors.New("invalid hint type")

func ParseHintType(input string) (HintType, error) {
	switch t := HintType(input); t {
	case HintTop, HintOnly, HintBottom:
		return t, nil
	}
	return "", errors.Wrapf(ErrInvalidHintType, "'%s'", input)
}

type Hint struct {
	Card Card     `json:"card"`
	Type HintType `json:"type"`

	// Played is set once the signalled card leaves the hand.
	// The hint stays visible in a spent state.
	Played bool `json:"played"`
}

func (h *Hint) Clone() *Hint {
	if h == nil {
		return nil
	}
	clone := *h
	return &clone
}
