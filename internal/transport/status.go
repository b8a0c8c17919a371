package transport

import (
	"github.com/libp2p/go-libp2p/core/peer"
	"go.uber.org/zap"
)

func (n *Node) watchPeers() {
	for {
		select {
		case <-n.ctx.Done():
			return
		case connection, more := <-n.connections:
			if !more {
				return
			}
			n.logger.Debug("peer connection",
				zap.Stringer("peerID", connection.PeerID),
				zap.Bool("connected", connection.Connected))
			n.peerChanged(connection.PeerID, connection.Connected)
		}
	}
}

func (n *Node) peerChanged(id peer.ID, connected bool) {
	n.statusMutex.Lock()
	defer n.statusMutex.Unlock()

	if connected {
		n.peers[id] = struct{}{}
	} else {
		delete(n.peers, id)
	}

	n.status = ConnectionStatus{
		IsOnline:   len(n.peers) > 0,
		PeersCount: len(n.peers),
	}

	for _, subscriber := range n.subscribers {
		select {
		case subscriber <- n.status:
		default:
			n.logger.Warn("connection status subscriber is full")
		}
	}
}

func (n *Node) ConnectionStatus() ConnectionStatus {
	n.statusMutex.Lock()
	defer n.statusMutex.Unlock()
	return n.status
}

func (n *Node) SubscribeToConnectionStatus() ConnectionStatusSubscription {
	n.statusMutex.Lock()
	defer n.statusMutex.Unlock()
	channel := make(ConnectionStatusSubscription, subscriptionBuffer)
	n.subscribers = append(n.subscribers, channel)
	return channel
}
