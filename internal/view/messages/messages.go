package messages

import (
	"github.com/six78/crew-cli/internal/transport"
	"github.com/six78/crew-cli/internal/view/states"
	"github.com/six78/crew-cli/pkg/engine"
	"github.com/six78/crew-cli/pkg/game"
	"github.com/six78/crew-cli/pkg/protocol"
)

type FatalErrorMessage struct {
	Err error
}

type AppStateFinishedMessage struct {
	State states.AppState
}

type AppStateMessage struct {
	State states.AppState
}

// ErrorMessage replaces the displayed error. A nil error clears it.
type ErrorMessage struct {
	Err error
}

func NewErrorMessage(err error) ErrorMessage {
	return ErrorMessage{Err: err}
}

type PlayerIDMessage struct {
	PlayerID protocol.PlayerID
}

type ConnectionStatus struct {
	Status transport.ConnectionStatus
}

// GameEvent is a game event. Only the field matching the tag is set.
type GameEvent struct {
	Tag   game.EventTag
	State *protocol.State
	Table *engine.GameState
	Match *protocol.MatchSummary
}

func NewGameEvent(event game.Event) GameEvent {
	message := GameEvent{Tag: event.Tag}
	switch data := event.Data.(type) {
	case *protocol.State:
		message.State = data
	case *engine.GameState:
		message.Table = data
	case *protocol.MatchSummary:
		message.Match = data
	}
	return message
}

type CommandModeChange struct {
	CommandMode bool
}

type RoomJoin struct {
	RoomID protocol.RoomID
	IsHost bool
}
