package eventhandler

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

type countMessage struct {
	count int
}

func convert(count int) countMessage {
	return countMessage{count: count}
}

func TestZeroModel(t *testing.T) {
	var m Model[int, countMessage]
	require.True(t, m.Closed())

	_, cmd := m.Update(countMessage{})
	require.Nil(t, cmd)
}

func TestEvents(t *testing.T) {
	events := make(chan int, 2)
	m := New[int, countMessage](convert)
	require.True(t, m.Closed())

	current := gofakeit.Number(0, 100)
	cmd := m.Init(events, current)
	require.NotNil(t, cmd)
	require.Equal(t, countMessage{count: current}, cmd())
	require.False(t, m.Closed())

	events <- current + 1
	m, cmd = m.Update(countMessage{count: current})
	require.NotNil(t, cmd)
	require.Equal(t, countMessage{count: current + 1}, cmd())

	// other messages do not arm a wait
	_, cmd = m.Update(gofakeit.Word())
	require.Nil(t, cmd)

	close(events)
	m, cmd = m.Update(countMessage{count: current + 1})
	require.NotNil(t, cmd)
	require.Nil(t, cmd())
	require.True(t, m.Closed())

	_, cmd = m.Update(countMessage{})
	require.Nil(t, cmd)
}
