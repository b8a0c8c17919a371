package storage

import (
	"context"

	"github.com/pkg/errors"

	"github.com/six78/crew-cli/pkg/protocol"
)

//go:generate mockgen -source=service.go -destination=mock/service.go

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrMatchNotFound = errors.New("match not found")
)

type PlayerStore interface {
	PlayerID() protocol.PlayerID
	PlayerName() string
	SetPlayerID(id protocol.PlayerID) error
	SetPlayerName(name string) error
}

type RoomStore interface {
	LoadRoomState(roomID protocol.RoomID) (*protocol.State, error)
	SaveRoomState(roomID protocol.RoomID, state *protocol.State) error
}

type Service interface {
	Initialize() error
	PlayerStore
	RoomStore
}

// MatchLog keeps finalized match summaries keyed by their seeds.
type MatchLog interface {
	SaveMatch(ctx context.Context, summary *protocol.MatchSummary) error
	LoadMatch(ctx context.Context, seeds protocol.Seeds) (*protocol.MatchSummary, error)
	ListMatches(ctx context.Context, playerID protocol.PlayerID) ([]*protocol.MatchSummary, error)
}

type remoteRooms struct {
	*LocalStorage
	rooms RoomStore
}

// WithRemoteRooms keeps the player identity in local storage and rooms in the given store.
func WithRemoteRooms(local *LocalStorage, rooms RoomStore) Service {
	return &remoteRooms{
		LocalStorage: local,
		rooms:        rooms,
	}
}

func (s *remoteRooms) LoadRoomState(roomID protocol.RoomID) (*protocol.State, error) {
	return s.rooms.LoadRoomState(roomID)
}

func (s *remoteRooms) SaveRoomState(roomID protocol.RoomID, state *protocol.State) error {
	return s.rooms.SaveRoomState(roomID, state)
}
