package protocol

import "golang.org/x/exp/slices"

// State is the authoritative channel state published by the dealer:
// the deal configuration, the append-only move log and player presence.
type State struct {
	Server    ServerState `json:"server"`
	Moves     []string    `json:"moves"`
	Players   PlayersList `json:"players"`
	Timestamp int64       `json:"-"`
}

func NewState(seeds Seeds) *State {
	return &State{
		Server:  NewServerState(seeds),
		Moves:   []string{},
		Players: PlayersList{},
	}
}

func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Server.StartingSeats = slices.Clone(s.Server.StartingSeats)
	clone.Moves = slices.Clone(s.Moves)
	clone.Players = slices.Clone(s.Players)
	return &clone
}

// UndoUsed reports whether the move log already holds an undo.
func (s *State) UndoUsed() bool {
	for _, token := range s.Moves {
		move, err := ParseMove(token)
		if err == nil && move.Type == MoveUndo {
			return true
		}
	}
	return false
}
