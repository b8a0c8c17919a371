package transport

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/waku-org/go-waku/waku/v2/protocol"
	"github.com/waku-org/go-waku/waku/v2/protocol/lightpush"
	"github.com/waku-org/go-waku/waku/v2/protocol/pb"
	"github.com/waku-org/go-waku/waku/v2/protocol/relay"
	"go.uber.org/zap"

	pp "github.com/six78/crew-cli/pkg/protocol"
)

const subscriptionBuffer = 10

func (n *Node) Publish(room *pp.Room, payload []byte) error {
	contentTopic, err := n.topics.Get(room)
	if err != nil {
		return err
	}

	message, err := seal(room, contentTopic, payload)
	if err != nil {
		return err
	}

	var hash pb.MessageHash
	if n.settings.LightMode {
		hash, err = n.waku.Lightpush().Publish(n.ctx, message, lightpush.WithPubSubTopic(n.pubsubTopic))
	} else {
		hash, err = n.waku.Relay().Publish(n.ctx, message, relay.WithPubSubTopic(n.pubsubTopic))
	}
	if err != nil {
		n.logger.Error("failed to publish message", zap.Error(err))
		return errors.Wrap(err, "failed to publish message")
	}

	n.logger.Debug("message sent", zap.String("hash", hex.EncodeToString(hash.Bytes())))
	return nil
}

func (n *Node) joinPubsubTopic() error {
	filter := protocol.NewContentFilter(n.pubsubTopic)
	_, err := n.waku.Relay().Subscribe(n.ctx, filter)
	if err != nil {
		return errors.Wrap(err, "failed to subscribe to pubsub topic")
	}

	go func() {
		<-n.ctx.Done()
		err := n.waku.Relay().Unsubscribe(n.ctx, filter)
		if err != nil {
			n.logger.Warn("failed to unsubscribe from relay", zap.Error(err))
		}
	}()
	return nil
}

// Subscribe delivers decrypted payloads of the room until Unsubscribe is called.
func (n *Node) Subscribe(room *pp.Room) (*Subscription, error) {
	contentTopic, err := n.topics.Get(room)
	if err != nil {
		return nil, err
	}

	filter := protocol.NewContentFilter(n.pubsubTopic, contentTopic)

	var in <-chan *protocol.Envelope
	var stop func()
	if n.settings.LightMode {
		in, stop, err = n.subscribeFilter(filter)
	} else {
		in, stop, err = n.subscribeRelay(filter)
	}
	if err != nil {
		n.logger.Error("failed to subscribe to room",
			zap.Bool("lightMode", n.settings.LightMode),
			zap.Error(err))
		return nil, err
	}

	leave := make(chan struct{})
	sub := &Subscription{
		Ch:          make(chan []byte, subscriptionBuffer),
		Unsubscribe: func() { close(leave) },
	}

	go func() {
		defer func() {
			stop()
			close(sub.Ch)
		}()

		for {
			select {
			case <-leave:
				return
			case <-n.ctx.Done():
				return
			case envelope, more := <-in:
				if !more {
					return
				}
				payload, err := open(room, envelope.Message())
				if err != nil {
					n.logger.Warn("dropping undecryptable message", zap.Error(err))
					continue
				}
				sub.Ch <- payload
			}
		}
	}()

	return sub, nil
}

func (n *Node) subscribeRelay(filter protocol.ContentFilter) (<-chan *protocol.Envelope, func(), error) {
	subs, err := n.waku.Relay().Subscribe(n.ctx, filter)
	stop := func() {
		err := n.waku.Relay().Unsubscribe(n.ctx, filter)
		if err != nil {
			n.logger.Warn("failed to unsubscribe from relay", zap.Error(err))
		}
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to subscribe to content topic")
	}
	if len(subs) != 1 {
		if len(subs) > 0 {
			stop()
		}
		return nil, nil, errors.Errorf("unexpected number of subscriptions: %d", len(subs))
	}
	return subs[0].Ch, stop, nil
}

func (n *Node) subscribeFilter(filter protocol.ContentFilter) (<-chan *protocol.Envelope, func(), error) {
	subs, err := n.waku.FilterLightnode().Subscribe(n.ctx, filter)
	stop := func() {
		response, err := n.waku.FilterLightnode().Unsubscribe(n.ctx, filter)
		if err != nil {
			n.logger.Warn("failed to unsubscribe from light node", zap.Error(err))
			return
		}
		for _, e := range response.Errors() {
			n.logger.Warn("light node unsubscribe error", zap.Error(e.Err))
		}
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to subscribe to content topic")
	}
	if len(subs) != 1 {
		if len(subs) > 0 {
			stop()
		}
		return nil, nil, errors.Errorf("unexpected number of subscriptions: %d", len(subs))
	}
	return subs[0].C, stop, nil
}
