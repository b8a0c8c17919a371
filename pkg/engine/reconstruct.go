package engine

import (
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/six78/crew-cli/pkg/missions"
	"github.com/six78/crew-cli/pkg/protocol"
	"github.com/six78/crew-cli/pkg/shuffle"
)

// Reconstruct deals the cards and the mission pool from the seeds
// and replays the move log on top of the deal.
// The same inputs always produce the same state.
func Reconstruct(server protocol.ServerState, moves []protocol.Move, opts ...Option) *GameState {
	s := newGameState(server, newConfig(opts))
	if !server.Started() || len(server.StartingSeats) == 0 {
		return s
	}

	s.deal()

	suppress := playsUntilUndo(moves, s.NumPlayers, s.acceptedUndo(moves))
	for i, move := range moves {
		outcome := s.apply(move, suppress[i])
		if outcome == Ignored {
			s.config.logger.Debug("move ignored",
				zap.Int("index", i),
				zap.Stringer("move", move))
		}
	}
	return s
}

// ReconstructFromTokens parses the move log and reconstructs the state.
// Malformed tokens are logged and skipped.
func ReconstructFromTokens(server protocol.ServerState, tokens []string, opts ...Option) *GameState {
	logger := newConfig(opts).logger
	moves := protocol.ParseMoves(tokens, func(token string, err error) {
		logger.Warn("skipping malformed move",
			zap.String("token", token),
			zap.Error(err))
	})
	return Reconstruct(server, moves, opts...)
}

func (s *GameState) deal() {
	seeds := s.server.Seeds
	generator := shuffle.New(seeds[0], seeds[1], seeds[2], seeds[3])
	cards := shuffle.Shuffle(generator, protocol.NewDeck())
	templates := shuffle.Shuffle(generator, missions.Catalog())

	active := s.server.StartingSeats
	s.NumPlayers = len(active)
	s.TotalTricks = protocol.DeckSize / s.NumPlayers

	next := 0
	for _, seat := range protocol.Seats {
		if !slices.Contains(active, seat) {
			continue
		}
		end := next + s.TotalTricks
		hand := cards[next:end].Clone()
		if hand.Contains(protocol.LeadTrump) {
			s.CaptainSeat = seat
			// One card is left over with three players, the captain takes it.
			if s.NumPlayers == 3 {
				hand = append(hand, cards[end])
				end++
			}
		}
		hand.Sort()
		s.Player(seat).Hand = hand
		next = end
	}

	if s.CaptainSeat == "" {
		s.CaptainSeat = active[0]
		captain := s.Player(s.CaptainSeat)
		captain.Hand = append(captain.Hand, protocol.LeadTrump)
		captain.Hand.Sort()
		s.config.logger.Debug("lead trump was not dealt, captain appointed",
			zap.Stringer("seat", s.CaptainSeat))
	}

	s.Pool = missions.Allocate(templates, s.NumPlayers, s.server.Target())
	s.WhoseTurn = s.CaptainSeat
	s.dealt = true
}

// acceptedUndo returns the index of the undo the deal takes, or -1.
// Undo moves the deal ignores, such as one sent during the draft, are skipped.
func (s *GameState) acceptedUndo(moves []protocol.Move) int {
	hasUndo := slices.IndexFunc(moves, func(m protocol.Move) bool {
		return m.Type == protocol.MoveUndo
	}) >= 0
	if !hasUndo {
		return -1
	}

	trial := s.Clone()
	trial.config.logger = zap.NewNop()
	trial.config.validate = false
	for i, move := range moves {
		if trial.apply(move, s.NumPlayers+1) == RebuildRequired {
			return i
		}
	}
	return -1
}

// playsUntilUndo computes for each move how many plays follow it before the
// accepted undo at index undo. An opening play of a trick is dropped when the
// undo comes within the next numPlayers plays.
func playsUntilUndo(moves []protocol.Move, numPlayers int, undo int) []int {
	result := make([]int, len(moves))
	counter := numPlayers + 1
	for i := len(moves) - 1; i >= 0; i-- {
		switch {
		case i == undo:
			counter = 0
		case moves[i].Type == protocol.MovePlay:
			counter++
		}
		result[i] = counter
	}
	return result
}
