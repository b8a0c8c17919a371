package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/six78/crew-cli/internal/transport"
	"github.com/six78/crew-cli/internal/view/messages"
	"github.com/six78/crew-cli/internal/view/states"
	"github.com/six78/crew-cli/pkg/game"
	"github.com/six78/crew-cli/pkg/protocol"
)

func InitializeApp(game *game.Game, transport transport.Service) tea.Cmd {
	return func() tea.Msg {
		err := transport.Initialize()
		if err != nil {
			return messages.FatalErrorMessage{
				Err: errors.Wrap(err, "failed to initialize transport"),
			}
		}

		err = transport.Start()
		if err != nil {
			return messages.FatalErrorMessage{
				Err: errors.Wrap(err, "failed to start transport"),
			}
		}

		err = game.Initialize()
		if err != nil {
			return messages.FatalErrorMessage{
				Err: errors.Wrap(err, "failed to initialize game"),
			}
		}

		return messages.AppStateFinishedMessage{State: states.Initializing}
	}
}

func RenamePlayer(game *game.Game, name string) tea.Cmd {
	return func() tea.Msg {
		err := game.RenamePlayer(name)
		return messages.NewErrorMessage(err)
	}
}

func CreateNewRoom(game *game.Game) tea.Cmd {
	return func() tea.Msg {
		room, initialState, err := game.CreateNewRoom()
		if err != nil {
			return messages.NewErrorMessage(err)
		}

		err = game.JoinRoom(room.ToRoomID(), initialState)
		if err != nil {
			return messages.NewErrorMessage(err)
		}

		return roomJoinMessage(game)
	}
}

func JoinRoom(game *game.Game, roomID protocol.RoomID) tea.Cmd {
	return func() tea.Msg {
		err := game.JoinRoom(roomID, nil)
		if err != nil {
			return messages.NewErrorMessage(err)
		}
		return roomJoinMessage(game)
	}
}

func LeaveRoom(game *game.Game) tea.Cmd {
	return func() tea.Msg {
		game.LeaveRoom()
		return roomJoinMessage(game)
	}
}

func roomJoinMessage(game *game.Game) messages.RoomJoin {
	return messages.RoomJoin{
		RoomID: game.RoomID(),
		IsHost: game.IsHost(),
	}
}

func Start(game *game.Game) tea.Cmd {
	return errorCommand(game.Start)
}

func Reset(game *game.Game) tea.Cmd {
	return errorCommand(game.Reset)
}

func SetTarget(game *game.Game, target int) tea.Cmd {
	return errorCommand(func() error {
		return game.SetTarget(target)
	})
}

func Play(game *game.Game, card protocol.Card) tea.Cmd {
	return errorCommand(func() error {
		return game.Play(card)
	})
}

func Hint(game *game.Game, card protocol.Card) tea.Cmd {
	return errorCommand(func() error {
		return game.Hint(card)
	})
}

func CancelHint(game *game.Game) tea.Cmd {
	return errorCommand(game.CancelHint)
}

func Draft(game *game.Game, missionID string, x *int) tea.Cmd {
	return errorCommand(func() error {
		return game.Draft(missionID, x)
	})
}

func Pass(game *game.Game) tea.Cmd {
	return errorCommand(game.Pass)
}

func Undo(game *game.Game) tea.Cmd {
	return errorCommand(game.Undo)
}

func Emote(game *game.Game, emote protocol.Emote) tea.Cmd {
	return errorCommand(func() error {
		return game.Emote(emote)
	})
}

// errorCommand reports the action result. Success clears the previous error.
func errorCommand(action func() error) tea.Cmd {
	return func() tea.Msg {
		return messages.NewErrorMessage(action())
	}
}

func QuitApp(game *game.Game) tea.Cmd {
	return func() tea.Msg {
		if game != nil {
			game.LeaveRoom()
		}
		return tea.Quit()
	}
}
