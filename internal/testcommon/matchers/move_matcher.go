package matchers

import (
	"testing"

	"github.com/six78/crew-cli/pkg/protocol"
)

// MoveMatcher matches a move message carrying exactly the given token.
type MoveMatcher struct {
	*MessageMatcher
	token string
}

func NewMoveMatcher(t *testing.T, move protocol.Move) *MoveMatcher {
	return &MoveMatcher{
		MessageMatcher: NewMessageMatcher(t),
		token:          move.String(),
	}
}

func (m *MoveMatcher) Matches(x interface{}) bool {
	if !m.parse(x, protocol.MessageTypePlayerMove) {
		return false
	}

	message, err := protocol.UnmarshalPlayerMoveMessage(m.payload)
	if err != nil || message.Move != m.token || message.Timestamp <= 0 {
		return false
	}

	m.trigger(message.Move)
	return true
}

func (m *MoveMatcher) String() string {
	return "is move message " + m.token
}

func (m *MoveMatcher) Wait() string {
	return m.MessageMatcher.Wait().(string)
}
