package engine

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/six78/crew-cli/pkg/protocol"
)

// Summary snapshots the deal for the match log.
func (s *GameState) Summary(moves []string, now time.Time) *protocol.MatchSummary {
	summary := &protocol.MatchSummary{
		Success:   s.Succeeded,
		Completed: s.Completed,
		UndoUsed:  s.UndoUsed,
		Meta:      s.server.Meta,
		CreatedAt: now.UnixMilli(),
		UpdatedAt: now.UnixMilli(),
		Moves:     slices.Clone(moves),
		Players:   map[protocol.PlayerID]protocol.MatchParticipant{},
	}
	summary.SetSeeds(s.server.Seeds)

	for _, seat := range s.server.StartingSeats {
		player := s.Player(seat)
		if player.ID == "" {
			continue
		}
		summary.Players[player.ID] = protocol.MatchParticipant{
			Seat: seat,
			Name: player.Name,
		}
	}
	return summary
}
