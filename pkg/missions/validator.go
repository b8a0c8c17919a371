package missions

import (
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/six78/crew-cli/pkg/protocol"
)

const (
	minPlayers = 3
	maxPlayers = 5
)

// Round is the part of a game the validator reasons about.
type Round struct {
	NumPlayers  int
	TotalTricks int
	Captain     protocol.SeatKey
	Seats       []protocol.SeatKey

	// Tricks are the completed tricks, in play order.
	Tricks []protocol.Trick
}

func (r *Round) valid() bool {
	return r.NumPlayers >= minPlayers &&
		r.NumPlayers <= maxPlayers &&
		slices.Contains(r.Seats, r.Captain)
}

// Validator decides objectives of a single seat against the completed tricks of a round.
type Validator struct {
	logger *zap.Logger
	eval   *evaluation
	valid  bool
}

func NewValidator(round Round, seat protocol.SeatKey, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := &Validator{
		logger: logger.With(zap.String("seat", seat.String())),
		valid:  round.valid(),
	}
	if !v.valid {
		v.logger.Warn("invalid round, objectives stay undecided",
			zap.Int("players", round.NumPlayers),
			zap.String("captain", round.Captain.String()),
		)
		return v
	}
	v.eval = newEvaluation(&round, seat)
	return v
}

// Status returns the decision for the mission. A decided mission keeps its status.
func (v *Validator) Status(mission *Mission) Status {
	if mission.Status.Decided() {
		return mission.Status
	}
	if !v.valid {
		return StatusPending
	}

	objective := mission.Template.Objective
	if objective == nil {
		v.logger.Warn("mission has no objective", zap.String("id", mission.ID))
		return StatusPending
	}

	e := *v.eval
	if mission.Template.HasSecretX() && mission.SecretX == nil {
		if e.gameOver() {
			return StatusFail
		}
		return StatusPending
	}

	e.secretX = mission.SecretX

	if objective.passed(&e) {
		return StatusPass
	}
	if objective.failed(&e) || e.gameOver() {
		return StatusFail
	}
	return StatusPending
}

// Update stores the decision of every undecided mission.
func (v *Validator) Update(missions []*Mission) {
	for _, mission := range missions {
		if mission.Status.Decided() {
			continue
		}
		mission.Status = v.Status(mission)
		if mission.Status.Decided() {
			v.logger.Debug("mission decided",
				zap.String("id", mission.ID),
				zap.String("status", string(mission.Status)),
			)
		}
	}
}

// AllPassed reports whether there is at least one mission and every mission passed.
func AllPassed(missions []*Mission) bool {
	if len(missions) == 0 {
		return false
	}
	for _, mission := range missions {
		if mission.Status != StatusPass {
			return false
		}
	}
	return true
}
