package eventhandler

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

type source[E any, M any] struct {
	events  <-chan E
	convert func(E) M
	closed  atomic.Bool
}

func (s *source[E, M]) next() tea.Msg {
	event, more := <-s.events
	if !more {
		s.closed.Store(true)
		return nil
	}
	return s.convert(event)
}

// Model relays a subscription channel into the program loop.
// Every delivered message of type M arms the wait for the next event,
// so at most one event is in flight.
type Model[E any, M any] struct {
	source *source[E, M]
}

func New[E any, M any](convert func(E) M) Model[E, M] {
	return Model[E, M]{
		source: &source[E, M]{convert: convert},
	}
}

// Init delivers the current value first.
func (m Model[E, M]) Init(events <-chan E, current E) tea.Cmd {
	m.source.events = events
	message := m.source.convert(current)
	return func() tea.Msg {
		return message
	}
}

func (m Model[E, M]) Closed() bool {
	return m.source == nil || m.source.events == nil || m.source.closed.Load()
}

func (m Model[E, M]) Update(msg tea.Msg) (Model[E, M], tea.Cmd) {
	if _, ok := msg.(M); !ok || m.Closed() {
		return m, nil
	}
	return m, m.source.next
}
