package game

import (
	"github.com/google/uuid"

	"github.com/six78/crew-cli/pkg/protocol"
)

func GeneratePlayerID() (protocol.PlayerID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return protocol.PlayerID(id.String()), nil
}
