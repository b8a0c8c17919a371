package view

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/six78/crew-cli/internal/view/commands"
	"github.com/six78/crew-cli/internal/view/messages"
	"github.com/six78/crew-cli/internal/view/states"
	"github.com/six78/crew-cli/pkg/protocol"
)

type Action string

const (
	Rename Action = "rename"
	New    Action = "new"
	Join   Action = "join"
	Exit   Action = "exit"
	Start  Action = "start"
	Reset  Action = "reset"
	Target Action = "target"
	Play   Action = "play"
	Hint   Action = "hint"
	Unhint Action = "unhint"
	Draft  Action = "draft"
	Pass   Action = "pass"
	Undo   Action = "undo"
	Emote  Action = "emote"
)

type actionFunc func(m *model, args []string) tea.Cmd

var actions = map[Action]actionFunc{
	Rename: runRenameAction,
	New:    runNewAction,
	Join:   runJoinAction,
	Exit:   runExitAction,
	Start:  runStartAction,
	Reset:  runResetAction,
	Target: runTargetAction,
	Play:   runPlayAction,
	Hint:   runHintAction,
	Unhint: runUnhintAction,
	Draft:  runDraftAction,
	Pass:   runPassAction,
	Undo:   runUndoAction,
	Emote:  runEmoteAction,
}

func errorMessage(err error) tea.Cmd {
	return func() tea.Msg {
		return messages.NewErrorMessage(err)
	}
}

func processPlayerNameInput(m *model, playerName string) tea.Cmd {
	return func() tea.Msg {
		err := m.game.RenamePlayer(playerName)
		if err != nil {
			return messages.NewErrorMessage(err)
		}
		return messages.AppStateFinishedMessage{
			State: states.InputPlayerName,
		}
	}
}

func runRenameAction(m *model, args []string) tea.Cmd {
	if len(args) == 0 {
		return errorMessage(errors.New("empty name"))
	}
	return commands.RenamePlayer(m.game, strings.Join(args, " "))
}

func runNewAction(m *model, _ []string) tea.Cmd {
	return commands.CreateNewRoom(m.game)
}

func runJoinAction(m *model, args []string) tea.Cmd {
	if len(args) == 0 {
		return errorMessage(errors.New("no room id argument provided"))
	}
	room, err := protocol.ParseRoomID(args[0])
	if err != nil {
		return errorMessage(err)
	}
	return commands.JoinRoom(m.game, room.ToRoomID())
}

func runExitAction(m *model, _ []string) tea.Cmd {
	return commands.LeaveRoom(m.game)
}

func runStartAction(m *model, _ []string) tea.Cmd {
	return commands.Start(m.game)
}

func runResetAction(m *model, _ []string) tea.Cmd {
	return commands.Reset(m.game)
}

func runTargetAction(m *model, args []string) tea.Cmd {
	if len(args) == 0 {
		return errorMessage(errors.New("no target provided"))
	}
	target, err := strconv.Atoi(args[0])
	if err != nil {
		return errorMessage(errors.Wrapf(err, "invalid target '%s'", args[0]))
	}
	return commands.SetTarget(m.game, target)
}

// cardArgument parses the card argument, falling back to the selected card.
func cardArgument(m *model, args []string) (protocol.Card, error) {
	if len(args) > 0 {
		return protocol.ParseCard(args[0])
	}
	card, ok := m.handView.Selected()
	if !ok {
		return "", errors.New("no card provided")
	}
	return card, nil
}

func runPlayAction(m *model, args []string) tea.Cmd {
	card, err := cardArgument(m, args)
	if err != nil {
		return errorMessage(err)
	}
	return commands.Play(m.game, card)
}

func runHintAction(m *model, args []string) tea.Cmd {
	card, err := cardArgument(m, args)
	if err != nil {
		return errorMessage(err)
	}
	return commands.Hint(m.game, card)
}

func runUnhintAction(m *model, _ []string) tea.Cmd {
	return commands.CancelHint(m.game)
}

func runDraftAction(m *model, args []string) tea.Cmd {
	if len(args) == 0 {
		return errorMessage(errors.New("no mission id provided"))
	}
	var x *int
	if len(args) > 1 {
		value, err := strconv.Atoi(args[1])
		if err != nil {
			return errorMessage(errors.Wrapf(err, "invalid mission parameter '%s'", args[1]))
		}
		x = &value
	}
	return commands.Draft(m.game, strings.TrimPrefix(args[0], "#"), x)
}

func runPassAction(m *model, _ []string) tea.Cmd {
	return commands.Pass(m.game)
}

func runUndoAction(m *model, _ []string) tea.Cmd {
	return commands.Undo(m.game)
}

func runEmoteAction(m *model, args []string) tea.Cmd {
	emote := protocol.EmoteNone
	if len(args) > 0 {
		emote = protocol.Emote(args[0])
	}
	switch emote {
	case protocol.EmoteDistress, protocol.EmoteWinnable, protocol.EmoteTrust, protocol.EmoteNone:
	default:
		return errorMessage(errors.Errorf("unknown emote '%s'", emote))
	}
	return commands.Emote(m.game, emote)
}
