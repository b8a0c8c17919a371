package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/six78/crew-cli/internal/config"
	"github.com/six78/crew-cli/internal/transport"
	"github.com/six78/crew-cli/pkg/game"
)

// NewProgram creates the interactive table. The initial action is executed
// as soon as the relay has peers.
func NewProgram(game *game.Game, transport transport.Service, initialAction string) *tea.Program {
	return tea.NewProgram(initialModel(game, transport, initialAction))
}

func RunProgram(p *tea.Program) int {
	if _, err := p.Run(); err != nil {
		config.Logger.Error("error running program", zap.Error(err))
		return 1
	}
	return 0
}

func Run(game *game.Game, transport transport.Service, initialAction string) int {
	return RunProgram(NewProgram(game, transport, initialAction))
}
