package protocol

import (
	"sort"

	"github.com/pkg/errors"
)

type MatchParticipant struct {
	Seat SeatKey `json:"seat"`
	Name string  `json:"name"`
}

// MatchSummary is the finalized snapshot of a deal kept in the match log.
// Entries are keyed by the four seeds.
type MatchSummary struct {
	Seed1     uint32                        `json:"seed1"`
	Seed2     uint32                        `json:"seed2"`
	Seed3     uint32                        `json:"seed3"`
	Seed4     uint32                        `json:"seed4"`
	Success   bool                          `json:"success"`
	Completed bool                          `json:"completed"`
	UndoUsed  bool                          `json:"undo_used"`
	Meta      Meta                          `json:"meta"`
	CreatedAt int64                         `json:"created_at"`
	UpdatedAt int64                         `json:"updated_at"`
	Moves     []string                      `json:"moves"`
	Players   map[PlayerID]MatchParticipant `json:"players"`
}

func (m *MatchSummary) Seeds() Seeds {
	return Seeds{m.Seed1, m.Seed2, m.Seed3, m.Seed4}
}

func (m *MatchSummary) SetSeeds(seeds Seeds) {
	m.Seed1, m.Seed2, m.Seed3, m.Seed4 = seeds[0], seeds[1], seeds[2], seeds[3]
}

// ServerState rebuilds the started deal the summary was taken from.
func (m *MatchSummary) ServerState() (ServerState, error) {
	state := NewServerState(m.Seeds())
	state.Meta = m.Meta

	for id, participant := range m.Players {
		index := participant.Seat.Index()
		if index < 0 {
			return ServerState{}, errors.Wrapf(ErrInvalidSeat, "player %s", id)
		}
		if !state.Seats[index].Empty() {
			return ServerState{}, errors.Errorf("seat %s is taken twice", participant.Seat)
		}
		state.Seats[index] = Occupant{ID: id, Name: participant.Name}
	}

	state.Start()
	return state, nil
}

// Participants returns the players ordered by seat.
func (m *MatchSummary) Participants() []Occupant {
	result := make([]Occupant, 0, len(m.Players))
	for id, participant := range m.Players {
		result = append(result, Occupant{ID: id, Name: participant.Name})
	}
	sort.Slice(result, func(i, j int) bool {
		return m.Players[result[i].ID].Seat.Index() < m.Players[result[j].ID].Seat.Index()
	})
	return result
}

func (m *MatchSummary) Validate() error {
	if len(m.Players) == 0 {
		return errors.New("no players")
	}
	_, err := m.ServerState()
	return err
}
