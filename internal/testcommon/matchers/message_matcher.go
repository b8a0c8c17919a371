package matchers

import (
	"testing"

	"github.com/six78/crew-cli/pkg/protocol"
)

type MessageMatcher struct {
	*Matcher
	payload []byte
	message *protocol.Message
}

func NewMessageMatcher(t *testing.T) *MessageMatcher {
	return &MessageMatcher{
		Matcher: NewMatcher(t),
	}
}

// parse accepts any payload holding a protocol message of the given type.
func (m *MessageMatcher) parse(x interface{}, messageType protocol.MessageType) bool {
	m.message = nil
	payload, ok := x.([]byte)
	if !ok || payload == nil {
		return false
	}
	m.payload = payload

	message, err := protocol.UnmarshalMessage(payload)
	if err != nil || message.Type != messageType {
		return false
	}

	m.message = message
	return true
}
