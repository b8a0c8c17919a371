package demo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/six78/crew-cli/pkg/engine"
	"github.com/six78/crew-cli/pkg/game"
	"github.com/six78/crew-cli/pkg/missions"
	"github.com/six78/crew-cli/pkg/protocol"
)

func TestDraftArgument(t *testing.T) {
	plain, ok := missions.Lookup("11")
	require.True(t, ok)
	require.Nil(t, secretX(plain))
	require.Equal(t, "11", draftArgument(plain))

	secret, ok := missions.Lookup("9")
	require.True(t, ok)
	require.NotNil(t, secretX(secret))
	require.Equal(t, "9 1", draftArgument(secret))
}

func TestWatcher(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := game.NewEventManager()
	w := watch(ctx, events.Subscribe())

	hasState := func(state *protocol.State, _ *engine.GameState) bool {
		return state != nil
	}

	err := w.waitFor(ctx, 10*time.Millisecond, hasState)
	require.Error(t, err)

	events.Send(game.Event{Tag: game.EventStateChanged, Data: &protocol.State{}})
	err = w.waitFor(ctx, time.Second, hasState)
	require.NoError(t, err)

	// The watcher keeps draining so senders never block.
	for i := 0; i < 50; i++ {
		events.Send(game.Event{Tag: game.EventGameChanged, Data: &engine.GameState{}})
	}
	err = w.waitFor(ctx, time.Second, func(_ *protocol.State, table *engine.GameState) bool {
		return table != nil
	})
	require.NoError(t, err)

	cancel()
	err = w.waitFor(ctx, time.Second, func(*protocol.State, *engine.GameState) bool {
		return false
	})
	require.ErrorIs(t, err, context.Canceled)
}
