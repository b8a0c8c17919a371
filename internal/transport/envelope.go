package transport

import (
	"github.com/pkg/errors"
	wp "github.com/waku-org/go-waku/waku/v2/payload"
	"github.com/waku-org/go-waku/waku/v2/protocol/pb"
	"github.com/waku-org/go-waku/waku/v2/utils"

	"github.com/six78/crew-cli/pkg/protocol"
)

// Version 1 marks a symmetrically encrypted payload.
const sealedVersion uint32 = 1

func roomKey(room *protocol.Room) *wp.KeyInfo {
	return &wp.KeyInfo{
		Kind:   wp.Symmetric,
		SymKey: room.SymmetricKey,
	}
}

// seal wraps the payload into a message on the content topic, encrypted with the room key.
func seal(room *protocol.Room, contentTopic string, payload []byte) (*pb.WakuMessage, error) {
	version := sealedVersion
	message := &pb.WakuMessage{
		Payload:      payload,
		Version:      &version,
		ContentTopic: contentTopic,
		Timestamp:    utils.GetUnixEpoch(),
	}

	err := wp.EncodeWakuMessage(message, roomKey(room))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt message")
	}
	return message, nil
}

func open(room *protocol.Room, message *pb.WakuMessage) ([]byte, error) {
	err := wp.DecodeWakuMessage(message, roomKey(room))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt message")
	}
	return message.Payload, nil
}
