package matchers

import (
	"github.com/six78/crew-cli/pkg/protocol"
)

// RoomMatcher matches a room, by pointer, value or id, with the same id.
type RoomMatcher struct {
	roomID protocol.RoomID
}

func NewRoomMatcher(room *protocol.Room) *RoomMatcher {
	return &RoomMatcher{
		roomID: room.ToRoomID(),
	}
}

func (m *RoomMatcher) Matches(x interface{}) bool {
	switch room := x.(type) {
	case *protocol.Room:
		return room != nil && room.ToRoomID() == m.roomID
	case protocol.Room:
		return room.ToRoomID() == m.roomID
	case protocol.RoomID:
		return room == m.roomID
	}
	return false
}

func (m *RoomMatcher) String() string {
	return "is room " + m.roomID.String()
}
