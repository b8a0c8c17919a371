package game

import (
	"sync"
	"sync/atomic"
)

type EventTag int

const (
	// EventStateChanged carries the room state, *protocol.State.
	EventStateChanged EventTag = iota
	// EventGameChanged carries the rebuilt deal, *engine.GameState.
	EventGameChanged
	// EventMatchSaved carries the stored *protocol.MatchSummary.
	EventMatchSaved
)

const subscriptionBuffer = 10

type Event struct {
	Tag  EventTag
	Data interface{}
}

// Subscription receives game events. Every event is a full snapshot, so a
// subscriber that falls behind loses its oldest pending events instead of
// stalling the game.
type Subscription struct {
	Events  chan Event
	dropped atomic.Int64
}

func (s *Subscription) Dropped() int64 {
	return s.dropped.Load()
}

func (s *Subscription) push(event Event) {
	for {
		select {
		case s.Events <- event:
			return
		default:
		}
		select {
		case <-s.Events:
			s.dropped.Add(1)
		default:
		}
	}
}

type EventManager struct {
	mutex         sync.Mutex
	subscriptions []*Subscription
}

func NewEventManager() *EventManager {
	return &EventManager{}
}

func (m *EventManager) Send(event Event) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	for _, sub := range m.subscriptions {
		sub.push(event)
	}
}

func (m *EventManager) Subscribe() *Subscription {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	sub := &Subscription{
		Events: make(chan Event, subscriptionBuffer),
	}
	m.subscriptions = append(m.subscriptions, sub)
	return sub
}

func (m *EventManager) Count() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.subscriptions)
}

// Close ends every subscription.
func (m *EventManager) Close() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	for _, sub := range m.subscriptions {
		close(sub.Events)
	}
	m.subscriptions = nil
}
