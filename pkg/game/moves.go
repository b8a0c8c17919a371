package game

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/six78/crew-cli/pkg/engine"
	"github.com/six78/crew-cli/pkg/missions"
	"github.com/six78/crew-cli/pkg/protocol"
)

var (
	ErrNotStarted       = errors.New("deal not started")
	ErrNotSeated        = errors.New("not taking part in the deal")
	ErrWrongPhase       = errors.New("not allowed in this phase")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrCardNotInHand    = errors.New("card is not in hand")
	ErrNoSignal         = errors.New("card can't be signalled")
	ErrUnknownMission   = errors.New("mission is not in the pool")
	ErrNoPassesLeft     = errors.New("no passes left")
	ErrUndoNotAvailable = errors.New("undo is not available")
	ErrFeatureDisabled  = errors.New("disabled at this table")
)

// checkTable runs the check against the local deal and this player's seat in it.
func (g *Game) checkTable(check func(table *engine.GameState, me *engine.Player) error) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if g.table == nil {
		return ErrNotStarted
	}
	me := g.table.PlayerByID(g.player.ID)
	if me == nil || !slices.Contains(g.table.ActiveSeats(), me.Seat) {
		return ErrNotSeated
	}
	return check(g.table, me)
}

func requireTurn(table *engine.GameState, me *engine.Player, phase engine.Phase) error {
	if table.Phase() != phase {
		return errors.Wrapf(ErrWrongPhase, "%s", table.Phase())
	}
	if table.WhoseTurn != me.Seat {
		return ErrNotYourTurn
	}
	return nil
}

func (g *Game) Play(card protocol.Card) error {
	err := g.checkTable(func(table *engine.GameState, me *engine.Player) error {
		if err := requireTurn(table, me, engine.PhaseTrickPlay); err != nil {
			return err
		}
		if !me.Hand.Contains(card) {
			return ErrCardNotInHand
		}
		return nil
	})
	if err != nil {
		return err
	}
	return g.publishMove(protocol.PlayMove(g.player.ID, card))
}

// Hint signals a card of the hand. The signal type follows from the rest of the hand.
func (g *Game) Hint(card protocol.Card) error {
	if !g.features.EnableHints {
		return errors.Wrap(ErrFeatureDisabled, "hints")
	}
	var hintType protocol.HintType
	err := g.checkTable(func(table *engine.GameState, me *engine.Player) error {
		phase := table.Phase()
		if phase != engine.PhaseMissionDraft && phase != engine.PhaseTrickPlay {
			return errors.Wrapf(ErrWrongPhase, "%s", phase)
		}
		if !me.Hand.Contains(card) {
			return ErrCardNotInHand
		}
		var ok bool
		hintType, ok = engine.ClassifySignal(card, me.Hand)
		if !ok {
			return ErrNoSignal
		}
		return nil
	})
	if err != nil {
		return err
	}
	return g.publishMove(protocol.HintMove(g.player.ID, card, hintType))
}

func (g *Game) CancelHint() error {
	err := g.checkTable(func(table *engine.GameState, me *engine.Player) error {
		if table.Phase() == engine.PhaseGameOver {
			return errors.Wrapf(ErrWrongPhase, "%s", table.Phase())
		}
		return nil
	})
	if err != nil {
		return err
	}
	return g.publishMove(protocol.CancelHintMove(g.player.ID))
}

// Draft takes a mission from the pool. x is the hidden value of templates that need one.
func (g *Game) Draft(missionID string, x *int) error {
	err := g.checkTable(func(table *engine.GameState, me *engine.Player) error {
		if err := requireTurn(table, me, engine.PhaseMissionDraft); err != nil {
			return err
		}
		inPool := slices.ContainsFunc(table.Pool, func(template missions.Template) bool {
			return template.ID == missionID
		})
		if !inPool {
			return errors.Wrap(ErrUnknownMission, missionID)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return g.publishMove(protocol.DraftMove(g.player.ID, missionID, x))
}

func (g *Game) Pass() error {
	err := g.checkTable(func(table *engine.GameState, me *engine.Player) error {
		if err := requireTurn(table, me, engine.PhaseMissionDraft); err != nil {
			return err
		}
		if me.PassesRemaining <= 0 {
			return ErrNoPassesLeft
		}
		return nil
	})
	if err != nil {
		return err
	}
	return g.publishMove(protocol.PassMove(g.player.ID))
}

func (g *Game) Emote(emote protocol.Emote) error {
	if !g.features.EnableEmotes {
		return errors.Wrap(ErrFeatureDisabled, "emotes")
	}
	err := g.checkTable(func(*engine.GameState, *engine.Player) error {
		return nil
	})
	if err != nil {
		return err
	}
	return g.publishMove(protocol.EmoteMove(g.player.ID, emote))
}

// Undo takes back the last trick play. It is available once per deal.
func (g *Game) Undo() error {
	if !g.features.EnableUndo {
		return errors.Wrap(ErrFeatureDisabled, "undo")
	}
	err := g.checkTable(func(table *engine.GameState, me *engine.Player) error {
		if table.Phase() != engine.PhaseTrickPlay || table.UndoUsed {
			return ErrUndoNotAvailable
		}
		return nil
	})
	if err != nil {
		return err
	}
	return g.publishMove(protocol.UndoMove(g.player.ID))
}

func (g *Game) publishMove(move protocol.Move) error {
	token := move.String()
	g.logger.Debug("publishing move", zap.String("token", token))

	err := g.publishMessage(protocol.PlayerMoveMessage{
		Message: protocol.Message{
			Type:      protocol.MessageTypePlayerMove,
			Timestamp: g.timestamp(),
		},
		Move: token,
	})
	if err != nil {
		g.logger.Error("failed to publish move", zap.Error(err))
	}
	return err
}
