package game

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/crew-cli/pkg/protocol"
)

const (
	MinPlayers = 3
	MaxTarget  = 99
)

var (
	ErrNotHost          = errors.New("only the host can do this")
	ErrAlreadyStarted   = errors.New("deal already started")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrInvalidTarget    = errors.New("invalid target")
)

func (g *Game) requireHost() error {
	if !g.isHost || g.state == nil {
		return ErrNotHost
	}
	return nil
}

// Start deals to everyone seated. The move log starts empty.
func (g *Game) Start() error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if err := g.requireHost(); err != nil {
		return err
	}
	if g.state.Server.Started() {
		return ErrAlreadyStarted
	}
	if count := g.state.Server.SeatedCount(); count < MinPlayers {
		return errors.Wrapf(ErrNotEnoughPlayers, "%d seated", count)
	}

	g.state.Server.Start()
	g.state.Moves = []string{}
	g.logger.Info("deal started",
		zap.Stringer("seeds", g.state.Server.Seeds),
		zap.Int("players", len(g.state.Server.StartingSeats)))
	g.notifyChangedState(true)
	return nil
}

// Reset returns the room to the waiting state with fresh seeds and the same seating.
func (g *Game) Reset() error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if err := g.requireHost(); err != nil {
		return err
	}

	g.state.Server.Reset(protocol.NewSeeds())
	g.state.Moves = []string{}
	g.savedSeeds = nil
	g.notifyChangedState(true)
	return nil
}

// SetTarget changes the mission difficulty of the next deal.
func (g *Game) SetTarget(target int) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if err := g.requireHost(); err != nil {
		return err
	}
	if g.state.Server.Started() {
		return ErrAlreadyStarted
	}
	if target <= 0 || target > MaxTarget {
		return errors.Wrapf(ErrInvalidTarget, "%d", target)
	}

	g.state.Server.Meta.Target = target
	g.notifyChangedState(true)
	return nil
}
