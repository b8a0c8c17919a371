package transport

import "github.com/six78/crew-cli/pkg/protocol"

//go:generate mockgen -source=service.go -destination=mock/service.go

// Service carries room messages between players. Every payload published to
// a room is encrypted with the room key and delivered to all subscribers.
type Service interface {
	Initialize() error
	Start() error
	Stop()

	Subscribe(room *protocol.Room) (*Subscription, error)
	Publish(room *protocol.Room, payload []byte) error

	ConnectionStatus() ConnectionStatus
	SubscribeToConnectionStatus() ConnectionStatusSubscription
}

type Subscription struct {
	Ch          chan []byte
	Unsubscribe func()
}

type ConnectionStatus struct {
	IsOnline   bool
	PeersCount int
}

type ConnectionStatusSubscription chan ConnectionStatus
