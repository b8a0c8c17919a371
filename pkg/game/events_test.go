package game

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/six78/crew-cli/pkg/protocol"
)

func TestEventManager(t *testing.T) {
	const subscribersCount = 3
	manager := NewEventManager()

	subs := make([]*Subscription, subscribersCount)
	for i := range subs {
		subs[i] = manager.Subscribe()
	}
	require.Equal(t, subscribersCount, manager.Count())

	events := []Event{
		{Tag: EventStateChanged, Data: protocol.NewState(protocol.NewSeeds())},
		{Tag: EventMatchSaved, Data: &protocol.MatchSummary{Moves: []string{gofakeit.LetterN(4)}}},
	}
	for _, event := range events {
		manager.Send(event)
	}

	for _, sub := range subs {
		for _, event := range events {
			require.Equal(t, event, <-sub.Events)
		}
	}

	manager.Close()
	require.Empty(t, manager.subscriptions)
	require.Zero(t, manager.Count())

	for _, sub := range subs {
		_, ok := <-sub.Events
		require.False(t, ok)
	}
}

func TestSlowSubscriberDropsOldest(t *testing.T) {
	manager := NewEventManager()
	sub := manager.Subscribe()

	total := subscriptionBuffer + 5
	for i := 0; i < total; i++ {
		manager.Send(Event{Tag: EventMatchSaved, Data: i})
	}
	require.EqualValues(t, 5, sub.Dropped())
	require.Len(t, sub.Events, subscriptionBuffer)

	for i := total - subscriptionBuffer; i < total; i++ {
		require.Equal(t, i, (<-sub.Events).Data)
	}
	manager.Close()
}
