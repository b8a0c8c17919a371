package game

import (
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/six78/crew-cli/pkg/engine"
	"github.com/six78/crew-cli/pkg/protocol"
)

func (g *Game) engineOptions() []engine.Option {
	return []engine.Option{
		engine.WithViewer(g.player.ID),
		engine.WithLogger(g.logger),
		engine.WithMissionValidation(g.config.ValidateMissions),
	}
}

func (g *Game) resetTable() {
	g.table = nil
	g.applied = nil
}

// syncTable brings the rebuilt deal up to date with the room state. Moves appended
// to an already applied log are applied one by one, anything else is rebuilt.
func (g *Game) syncTable() {
	if g.state == nil || !g.state.Server.Started() {
		g.resetTable()
		return
	}

	if g.table == nil || !sameDeal(g.table.Server(), g.state.Server) || !extendsLog(g.applied, g.state.Moves) {
		g.rebuildTable()
		return
	}

	for _, token := range g.state.Moves[len(g.applied):] {
		move, err := protocol.ParseMove(token)
		if err != nil {
			g.logger.Warn("skipping malformed move", zap.String("token", token), zap.Error(err))
			continue
		}
		outcome := g.table.Apply(move)
		g.logger.Debug("move applied",
			zap.String("token", token),
			zap.Stringer("outcome", outcome))
		if outcome == engine.RebuildRequired {
			g.rebuildTable()
			return
		}
	}
	g.applied = slices.Clone(g.state.Moves)
}

func (g *Game) rebuildTable() {
	g.logger.Debug("rebuilding deal", zap.Int("moves", len(g.state.Moves)))
	g.table = engine.ReconstructFromTokens(g.state.Server, g.state.Moves, g.engineOptions()...)
	g.applied = slices.Clone(g.state.Moves)
}

// sameDeal reports whether both states describe the same seeds and seating.
func sameDeal(a, b protocol.ServerState) bool {
	if a.Seeds != b.Seeds || !slices.Equal(a.StartingSeats, b.StartingSeats) {
		return false
	}
	for _, seat := range a.StartingSeats {
		if a.Occupant(seat).ID != b.Occupant(seat).ID {
			return false
		}
	}
	return true
}

func extendsLog(applied, moves []string) bool {
	return len(moves) >= len(applied) && slices.Equal(applied, moves[:len(applied)])
}

// saveCompletedMatch stores the summary of a finished deal once per seeds.
func (g *Game) saveCompletedMatch() {
	if g.matchLog == nil || g.table == nil || !g.table.Completed {
		return
	}

	seeds := g.state.Server.Seeds
	if g.savedSeeds != nil && *g.savedSeeds == seeds {
		return
	}

	summary := g.table.Summary(g.state.Moves, g.clock.Now())
	err := g.matchLog.SaveMatch(g.ctx, summary)
	if err != nil {
		g.logger.Error("failed to save match summary", zap.Error(err))
		return
	}

	g.savedSeeds = &seeds
	g.logger.Info("match saved",
		zap.Stringer("seeds", seeds),
		zap.Bool("success", summary.Success))
	g.events.Send(Event{Tag: EventMatchSaved, Data: summary})
}
