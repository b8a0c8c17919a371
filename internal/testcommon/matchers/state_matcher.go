package matchers

import (
	"testing"

	"github.com/six78/crew-cli/pkg/protocol"
)

type StateFilter func(state *protocol.State) bool

// StateMatcher matches state messages, or State values passed to storage,
// that satisfy the filter. A nil filter matches any state.
type StateMatcher struct {
	*MessageMatcher
	filter StateFilter
}

func NewStateMatcher(t *testing.T, filter StateFilter) *StateMatcher {
	return &StateMatcher{
		MessageMatcher: NewMessageMatcher(t),
		filter:         filter,
	}
}

func (m *StateMatcher) Matches(x interface{}) bool {
	var state *protocol.State

	switch value := x.(type) {
	case *protocol.State:
		state = value
	default:
		if !m.parse(x, protocol.MessageTypeState) {
			return false
		}
		message, err := protocol.UnmarshalStateMessage(m.payload)
		if err != nil {
			return false
		}
		state = &message.State
	}

	if state == nil || (m.filter != nil && !m.filter(state)) {
		return false
	}

	m.trigger(*state)
	return true
}

func (m *StateMatcher) String() string {
	return "is state matching condition"
}

func (m *StateMatcher) Wait() protocol.State {
	return m.MessageMatcher.Wait().(protocol.State)
}
