package handview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/six78/crew-cli/internal/render"
	"github.com/six78/crew-cli/internal/view/components/cursor"
	"github.com/six78/crew-cli/internal/view/messages"
	"github.com/six78/crew-cli/pkg/engine"
	"github.com/six78/crew-cli/pkg/game"
	"github.com/six78/crew-cli/pkg/protocol"
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// Model shows the player's hand. The signalled card is raised.
type Model struct {
	playerID    protocol.PlayerID
	hand        protocol.Deck
	hint        *protocol.Hint
	playing     bool
	commandMode bool
	cursor      cursor.Model
}

func New() Model {
	return Model{
		cursor: cursor.New(false),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.PlayerIDMessage:
		m.playerID = msg.PlayerID
	case messages.GameEvent:
		if msg.Tag == game.EventGameChanged {
			m.setTable(msg.Table)
		}
	case messages.CommandModeChange:
		m.commandMode = msg.CommandMode
	}

	m.cursor.SetFocus(m.playing && !m.commandMode)
	m.cursor = m.cursor.Update(msg)
	return m
}

func (m *Model) setTable(table *engine.GameState) {
	m.hand = nil
	m.hint = nil
	m.playing = false

	if table == nil {
		m.cursor.SetSize(0)
		return
	}
	if me := table.PlayerByID(m.playerID); me != nil {
		m.hand = me.Hand
		m.hint = me.Hint
	}
	m.playing = table.Phase() == engine.PhaseTrickPlay
	m.cursor.SetSize(len(m.hand))
}

// Selected returns the card under the cursor.
func (m Model) Selected() (protocol.Card, bool) {
	if !m.cursor.Focused() || len(m.hand) == 0 {
		return "", false
	}
	return m.hand[m.cursor.Position()], true
}

func (m Model) View() string {
	if len(m.hand) == 0 {
		return ""
	}
	columns := make([]string, 0, 2*len(m.hand))
	for i, card := range m.hand {
		hinted := m.hint != nil && !m.hint.Played && m.hint.Card == card
		columns = append(columns, renderCard(card, m.cursor.Match(i), hinted), " ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func renderCard(card protocol.Card, isCursor bool, hinted bool) string {
	box := cardStyle.Render(render.Card(card))
	width := lipgloss.Width(box)
	blank := strings.Repeat(" ", width)

	marker := blank
	if isCursor {
		marker = "  ^" + strings.Repeat(" ", width-3)
	}

	if hinted {
		return strings.Join([]string{box, blank, marker}, "\n")
	}
	return strings.Join([]string{blank, box, marker}, "\n")
}
