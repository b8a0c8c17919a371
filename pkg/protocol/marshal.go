package protocol

import (
	"encoding/json"

	"github.com/pkg/errors"
)

func UnmarshalMessage(payload []byte) (*Message, error) {
	message := Message{}
	err := json.Unmarshal(payload, &message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal message")
	}
	return &message, nil
}

func UnmarshalStateMessage(payload []byte) (*GameStateMessage, error) {
	return unmarshalTyped[GameStateMessage](payload, MessageTypeState)
}

func UnmarshalPlayerOnlineMessage(payload []byte) (*PlayerOnlineMessage, error) {
	return unmarshalTyped[PlayerOnlineMessage](payload, MessageTypePlayerOnline)
}

func UnmarshalPlayerOfflineMessage(payload []byte) (*PlayerOfflineMessage, error) {
	return unmarshalTyped[PlayerOfflineMessage](payload, MessageTypePlayerOffline)
}

func UnmarshalPlayerMoveMessage(payload []byte) (*PlayerMoveMessage, error) {
	return unmarshalTyped[PlayerMoveMessage](payload, MessageTypePlayerMove)
}

type typedMessage interface {
	GameStateMessage | PlayerOnlineMessage | PlayerOfflineMessage | PlayerMoveMessage
}

func unmarshalTyped[T typedMessage](payload []byte, messageType MessageType) (*T, error) {
	message, err := UnmarshalMessage(payload)
	if err != nil {
		return nil, err
	}
	if message.Type != messageType {
		return nil, errors.Errorf("message is not a %s message", messageType)
	}

	var result T
	err = json.Unmarshal(payload, &result)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal %s message", messageType)
	}
	return &result, nil
}
