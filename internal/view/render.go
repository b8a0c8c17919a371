package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/six78/crew-cli/internal/config"
	"github.com/six78/crew-cli/internal/render"
	"github.com/six78/crew-cli/internal/view/commands"
	"github.com/six78/crew-cli/internal/view/states"
	"github.com/six78/crew-cli/pkg/engine"
)

var (
	foregroundShadeStyle = lipgloss.NewStyle().Foreground(config.ForegroundShadeColor)
	errorStyle           = lipgloss.NewStyle().Foreground(config.FailColor)
)

func (m model) renderAppState() string {
	switch m.state {
	case states.Initializing:
		return m.spinner.View() + " Starting relay node..."
	case states.InputPlayerName:
		return m.renderPlayerNameInput()
	case states.WaitingForPeers:
		return m.spinner.View() + " Connecting to relay peers..."
	case states.Playing:
		return m.renderGame()
	}
	return "unknown app state"
}

func (m model) renderPlayerNameInput() string {
	return lipgloss.JoinVertical(lipgloss.Top,
		"What's your name?",
		m.input.View(),
		m.renderError(),
	)
}

func (m model) renderGame() string {
	blocks := []string{
		m.statusView.View(),
		m.renderRoomID(),
	}
	if !m.roomID.Empty() {
		blocks = append(blocks, "", m.renderTable())
	}
	blocks = append(blocks, "", m.renderActionInput(), m.renderError())
	return lipgloss.JoinVertical(lipgloss.Top, blocks...)
}

func (m model) renderRoomID() string {
	if m.roomID.Empty() {
		return "  Join a room or create a new one ..."
	}
	var hostString string
	if m.isHost {
		hostString = foregroundShadeStyle.Render(" (host)")
	}
	return "  Room: " + m.roomID.String() + hostString
}

func (m model) renderTable() string {
	if m.table == nil && m.roomState == nil {
		return fmt.Sprintf("%s Waiting for the room state ...", m.spinner.View())
	}

	blocks := []string{render.Table(m.table, m.playerID)}
	if hand := m.handView.View(); hand != "" {
		blocks = append(blocks, "", hand)
	}
	if m.lastMatch != nil && m.table != nil && m.table.Phase() == engine.PhaseGameOver {
		blocks = append(blocks, foregroundShadeStyle.Render("Saved: ")+render.Summary(m.lastMatch))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m model) renderActionInput() string {
	if m.commandMode {
		return m.input.View()
	}
	return m.help.View(commands.DefaultKeyMap)
}

func (m model) renderError() string {
	if m.lastError == nil {
		return ""
	}
	return errorStyle.Render(m.lastError.Error())
}

func renderLogPath() string {
	path := strings.Replace(config.LogFilePath, " ", "%20", -1)
	return fmt.Sprintf("Log: file:///%s", path)
}
