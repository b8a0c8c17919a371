package matchers

import (
	"github.com/six78/crew-cli/pkg/protocol"
)

// TypeMatcher matches any message of the given type without recording it.
type TypeMatcher struct {
	messageType protocol.MessageType
}

func NewTypeMatcher(messageType protocol.MessageType) *TypeMatcher {
	return &TypeMatcher{
		messageType: messageType,
	}
}

func (m *TypeMatcher) Matches(x interface{}) bool {
	payload, ok := x.([]byte)
	if !ok {
		return false
	}
	message, err := protocol.UnmarshalMessage(payload)
	return err == nil && message.Type == m.messageType
}

func (m *TypeMatcher) String() string {
	return "is message of type " + string(m.messageType)
}
