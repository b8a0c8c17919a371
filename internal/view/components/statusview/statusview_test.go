package statusview

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/six78/crew-cli/internal/transport"
	"github.com/six78/crew-cli/internal/view/messages"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestView(t *testing.T) {
	model := New()
	require.Nil(t, model.Init())
	require.Equal(t, "● Relay: 0 peer(s)", model.View())

	model = model.Update(messages.ConnectionStatus{
		Status: transport.ConnectionStatus{IsOnline: true, PeersCount: 5},
	})
	require.Equal(t, "● Relay: 5 peer(s)", model.View())

	model = model.Update(messages.CommandModeChange{CommandMode: true})
	require.Equal(t, "● Relay: 5 peer(s)", model.View())
}
