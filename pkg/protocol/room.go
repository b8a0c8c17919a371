package protocol

import (
	"crypto/rand"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/six78/crew-cli/internal/config"
)

// RoomVersion 1 rooms carry a symmetric key for the relay envelopes.
const RoomVersion byte = 1

var (
	ErrInvalidRoomID          = errors.New("invalid room id")
	ErrUnsupportedRoomVersion = errors.New("unsupported room version")
)

// Room is a table channel on the relay. Holding the room id is enough to read and write it.
type Room struct {
	Version      byte   `json:"version"`
	SymmetricKey []byte `json:"symmetricKey"`

	id *RoomID
}

// RoomID is the base58 form of the room: version byte followed by the key.
type RoomID struct {
	string
}

func NewRoomID(roomID string) RoomID {
	return RoomID{roomID}
}

func (id RoomID) String() string {
	return id.string
}

func (id RoomID) Empty() bool {
	return id.string == ""
}

func NewRoom() (*Room, error) {
	key := make([]byte, config.SymmetricKeyLength)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Wrap(err, "failed to generate room key")
	}
	return &Room{Version: RoomVersion, SymmetricKey: key}, nil
}

func (room *Room) ToRoomID() RoomID {
	if room.id == nil {
		encoded := make([]byte, 0, 1+len(room.SymmetricKey))
		encoded = append(encoded, room.Version)
		encoded = append(encoded, room.SymmetricKey...)
		id := NewRoomID(base58.Encode(encoded))
		room.id = &id
	}
	return *room.id
}

// ParseRoomID decodes a room id of the supported version.
func ParseRoomID(input string) (*Room, error) {
	decoded, err := base58.Decode(input)
	if err != nil || len(decoded) == 0 {
		return nil, ErrInvalidRoomID
	}
	if decoded[0] != RoomVersion {
		return nil, errors.Wrapf(ErrUnsupportedRoomVersion, "%d", decoded[0])
	}
	if len(decoded)-1 != config.SymmetricKeyLength {
		return nil, errors.Wrapf(ErrInvalidRoomID, "key length %d", len(decoded)-1)
	}

	id := NewRoomID(input)
	return &Room{
		Version:      RoomVersion,
		SymmetricKey: decoded[1:],
		id:           &id,
	}, nil
}
