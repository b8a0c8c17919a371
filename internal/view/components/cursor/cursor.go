package cursor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a position within [0, size) moved by arrow keys.
// Horizontal cursors react to left/right, vertical ones to up/down.
type Model struct {
	vertical bool
	focused  bool
	position int
	size     int
}

func New(vertical bool) Model {
	return Model{vertical: vertical}
}

func (m Model) Update(msg tea.Msg) Model {
	if !m.focused {
		return m
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m
	}
	switch keyMsg.Type {
	case tea.KeyLeft, tea.KeyUp:
		if m.vertical == (keyMsg.Type == tea.KeyUp) {
			m.SetPosition(m.position - 1)
		}
	case tea.KeyRight, tea.KeyDown:
		if m.vertical == (keyMsg.Type == tea.KeyDown) {
			m.SetPosition(m.position + 1)
		}
	}
	return m
}

// Match reports whether the focused cursor points at position.
func (m *Model) Match(position int) bool {
	return m.focused && m.position == position
}

func (m *Model) Position() int {
	return m.position
}

func (m *Model) SetPosition(position int) {
	m.position = max(0, min(position, m.size-1))
}

// SetSize updates the number of items and keeps the position in range.
func (m *Model) SetSize(size int) {
	m.size = size
	m.SetPosition(m.position)
}

func (m *Model) Size() int {
	return m.size
}

func (m *Model) Focused() bool {
	return m.focused
}

func (m *Model) SetFocus(focused bool) {
	m.focused = focused
}
