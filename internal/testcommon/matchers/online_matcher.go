package matchers

import (
	"testing"

	"github.com/six78/crew-cli/pkg/protocol"
)

type OnlineMatcher struct {
	*MessageMatcher
	playerID protocol.PlayerID
}

func NewOnlineMatcher(t *testing.T, playerID protocol.PlayerID) *OnlineMatcher {
	return &OnlineMatcher{
		MessageMatcher: NewMessageMatcher(t),
		playerID:       playerID,
	}
}

func (m *OnlineMatcher) Matches(x interface{}) bool {
	if !m.parse(x, protocol.MessageTypePlayerOnline) {
		return false
	}

	message, err := protocol.UnmarshalPlayerOnlineMessage(m.payload)
	if err != nil || message.Player.ID != m.playerID {
		return false
	}

	m.trigger(*message)
	return true
}

func (m *OnlineMatcher) String() string {
	return "is player online message of " + string(m.playerID)
}

func (m *OnlineMatcher) Wait() protocol.PlayerOnlineMessage {
	return m.MessageMatcher.Wait().(protocol.PlayerOnlineMessage)
}
