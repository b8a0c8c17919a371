package engine

import (
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/six78/crew-cli/pkg/missions"
	"github.com/six78/crew-cli/pkg/protocol"
)

// Apply applies a single move on top of the current state.
// An undo only marks the state, the caller must reconstruct it from the full log.
func (s *GameState) Apply(move protocol.Move) Outcome {
	return s.apply(move, s.NumPlayers+1)
}

func (s *GameState) apply(move protocol.Move, playsUntilUndo int) Outcome {
	if !s.server.Started() || !s.dealt {
		return Ignored
	}

	if move.Type == protocol.MoveEmote {
		return s.applyEmote(move)
	}

	if len(s.Pool) > 0 {
		switch move.Type {
		case protocol.MoveHint:
			s.hints.push(move.Sender, move.Hint)
			return Queued
		case protocol.MoveDraft:
			return s.applyDraft(move)
		}
		return Ignored
	}

	switch move.Type {
	case protocol.MoveHint:
		if len(s.ActiveTrick.Cards) > 0 {
			s.hints.push(move.Sender, move.Hint)
			return Queued
		}
		return s.setHint(move.Sender, move.Hint)
	case protocol.MovePlay:
		return s.applyPlay(move, playsUntilUndo)
	case protocol.MoveUndo:
		return s.applyUndo(move)
	}
	return Ignored
}

func (s *GameState) applyEmote(move protocol.Move) Outcome {
	player := s.PlayerByID(move.Sender)
	if player == nil {
		return Ignored
	}
	player.Emote = move.Emote
	return Applied
}

func (s *GameState) applyDraft(move protocol.Move) Outcome {
	player := s.activePlayerByID(move.Sender)
	if player == nil || player.Seat != s.WhoseTurn {
		return Ignored
	}

	if move.IsPass() {
		if player.PassesRemaining <= 0 {
			return Ignored
		}
		player.PassesRemaining--
		s.rotate()
		return Applied
	}

	index := slices.IndexFunc(s.Pool, func(t missions.Template) bool {
		return t.ID == move.Mission
	})
	if index < 0 {
		return Ignored
	}

	template := s.Pool[index]
	mission := missions.NewMission(template)
	if move.X != nil && template.HasSecretX() {
		x := *move.X
		mission.SecretX = &x
		if template.XIsPublic() || (s.config.viewer != "" && s.config.viewer == player.ID) {
			visible := x
			mission.X = &visible
		}
	}
	player.Missions = append(player.Missions, mission)
	s.Pool = slices.Delete(s.Pool, index, index+1)

	if len(s.Pool) == 0 {
		s.WhoseTurn = s.CaptainSeat
		s.flushHints()
		return Applied
	}
	s.rotate()
	return Applied
}

func (s *GameState) setHint(sender protocol.PlayerID, hint *protocol.Hint) Outcome {
	player := s.activePlayerByID(sender)
	if player == nil {
		return Ignored
	}
	if hint == nil {
		player.Hint = nil
		return Applied
	}
	if !player.Hand.Contains(hint.Card) {
		return Ignored
	}
	hintType, ok := ClassifySignal(hint.Card, player.Hand)
	if !ok {
		return Ignored
	}
	player.Hint = &protocol.Hint{Card: hint.Card, Type: hintType}
	return Applied
}

func (s *GameState) flushHints() {
	for _, queued := range s.hints.drain() {
		if s.setHint(queued.sender, queued.hint) == Ignored {
			s.config.logger.Debug("queued hint dropped",
				zap.String("sender", string(queued.sender)))
		}
	}
}

func (s *GameState) applyPlay(move protocol.Move, playsUntilUndo int) Outcome {
	if s.Completed {
		return Ignored
	}

	player := s.TurnPlayer()
	if player == nil || player.ID == "" || player.ID != move.Sender {
		return Ignored
	}
	if !player.Hand.Contains(move.Card) {
		return Ignored
	}

	// An undo further in the log takes back the trick this play opens.
	if len(s.ActiveTrick.Cards) == 0 && playsUntilUndo <= s.NumPlayers {
		return Ignored
	}

	s.ActiveTrick.Cards = append(s.ActiveTrick.Cards, protocol.PlayedCard{
		Card:     move.Card,
		Position: player.Seat,
	})
	player.Hand.Remove(move.Card)
	if player.Hint != nil && player.Hint.Card == move.Card {
		player.Hint.Played = true
	}

	if len(s.ActiveTrick.Cards) < s.NumPlayers {
		s.rotate()
		return Applied
	}

	s.completeTrick()
	return TrickCompleted
}

func (s *GameState) completeTrick() {
	trick := s.ActiveTrick.Clone()
	winner := trick.Winner()

	taker := s.Player(winner.Position)
	taker.Tricks = append(taker.Tricks, trick)

	s.PreviousTrick = trick.Clone()
	s.ActiveTrick = protocol.Trick{
		Cards: []protocol.PlayedCard{},
		Index: trick.Index + 1,
	}
	s.WhoseTurn = winner.Position

	s.flushHints()
	s.validateMissions()

	if s.ActiveTrick.Index >= s.TotalTricks {
		s.Completed = true
	}

	s.config.logger.Debug("trick completed",
		zap.Int("index", trick.Index),
		zap.Stringer("winner", winner.Position),
		zap.Bool("completed", s.Completed))
}

func (s *GameState) validateMissions() {
	if !s.config.validate {
		return
	}
	round := s.Round()
	for _, seat := range s.server.StartingSeats {
		validator := missions.NewValidator(round, seat, s.config.logger)
		validator.Update(s.Player(seat).Missions)
	}
	s.Succeeded = missions.AllPassed(s.AssignedMissions())
}

func (s *GameState) applyUndo(move protocol.Move) Outcome {
	if s.UndoUsed || s.activePlayerByID(move.Sender) == nil {
		return Ignored
	}
	s.UndoUsed = true
	return RebuildRequired
}

// rotate passes the turn to the next active seat.
func (s *GameState) rotate() {
	seats := s.server.StartingSeats
	index := slices.Index(seats, s.WhoseTurn)
	s.WhoseTurn = seats[(index+1)%len(seats)]
}
