package protocol

type MessageType string

const (
	MessageTypeState         MessageType = "__state"
	MessageTypePlayerOnline  MessageType = "__player_online"
	MessageTypePlayerOffline MessageType = "__player_left"
	MessageTypePlayerMove    MessageType = "__move"
)

type Message struct {
	Type      MessageType `json:"type"`
	Timestamp int64       `json:"timestamp"`
}

type GameStateMessage struct {
	Message
	State State `json:"state"`
}

type PlayerOnlineMessage struct {
	Message
	Player Player `json:"player"`
}

type PlayerOfflineMessage struct {
	Message
	Player Player `json:"player"`
}

// PlayerMoveMessage carries a move token to the dealer, who appends it to the log.
type PlayerMoveMessage struct {
	Message
	Move string `json:"move"`
}
