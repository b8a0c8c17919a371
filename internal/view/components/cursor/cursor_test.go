package cursor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var (
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestHorizontal(t *testing.T) {
	model := New(false)
	model.SetSize(3)
	model.SetFocus(true)

	model = model.Update(keyRight)
	require.Equal(t, 1, model.Position())
	model = model.Update(keyDown)
	require.Equal(t, 1, model.Position())
	model = model.Update(keyRight)
	model = model.Update(keyRight)
	require.Equal(t, 2, model.Position())
	require.True(t, model.Match(2))

	model = model.Update(keyLeft)
	model = model.Update(keyLeft)
	model = model.Update(keyLeft)
	require.Equal(t, 0, model.Position())
}

func TestVertical(t *testing.T) {
	model := New(true)
	model.SetSize(2)
	model.SetFocus(true)

	model = model.Update(keyRight)
	require.Equal(t, 0, model.Position())
	model = model.Update(keyDown)
	require.Equal(t, 1, model.Position())
	model = model.Update(keyUp)
	require.Equal(t, 0, model.Position())
}

func TestBlurred(t *testing.T) {
	model := New(false)
	model.SetSize(5)

	model = model.Update(keyRight)
	require.Equal(t, 0, model.Position())
	require.False(t, model.Match(0))
}

func TestShrink(t *testing.T) {
	model := New(false)
	model.SetSize(5)
	model.SetPosition(4)
	require.Equal(t, 4, model.Position())

	model.SetSize(2)
	require.Equal(t, 1, model.Position())

	model.SetSize(0)
	require.Equal(t, 0, model.Position())
}
