package statusview

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/six78/crew-cli/internal/transport"
	"github.com/six78/crew-cli/internal/view/messages"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00E676"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEA00"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5722"))
)

// Model shows the relay connectivity.
type Model struct {
	status transport.ConnectionStatus
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	if msg, ok := msg.(messages.ConnectionStatus); ok {
		m.status = msg.Status
	}
	return m
}

func (m Model) View() string {
	style := dangerStyle
	switch {
	case m.status.PeersCount > 3:
		style = okStyle
	case m.status.PeersCount > 0:
		style = warnStyle
	}
	text := fmt.Sprintf(" Relay: %d peer(s)", m.status.PeersCount)
	return lipgloss.JoinHorizontal(lipgloss.Left, style.Render("●"), text)
}
