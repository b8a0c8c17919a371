package view

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/crew-cli/internal/config"
	"github.com/six78/crew-cli/internal/view/states"
)

func ProcessUserInput(m *model) tea.Cmd {
	defer m.input.Reset()
	return ProcessInput(m)
}

func ProcessInput(m *model) tea.Cmd {
	switch m.state {
	case states.InputPlayerName:
		return processPlayerNameInput(m, m.input.Value())
	case states.Playing:
		return ProcessAction(m, m.input.Value())
	}
	return nil
}

func ProcessAction(m *model, action string) tea.Cmd {
	args := strings.Fields(action)
	if len(args) == 0 {
		return nil
	}

	config.Logger.Debug("user action",
		zap.String("action", args[0]),
		zap.Strings("args", args[1:]),
	)

	commandRoot := Action(args[0])
	commandFn, ok := actions[commandRoot]
	if !ok {
		return errorMessage(errors.Errorf("unknown action: %s", commandRoot))
	}

	return commandFn(m, args[1:])
}
