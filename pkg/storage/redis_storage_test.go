package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/suite"

	"github.com/six78/crew-cli/internal/testcommon"
	"github.com/six78/crew-cli/pkg/protocol"
)

func TestRedisStorage(t *testing.T) {
	suite.Run(t, &RedisSuite{})
}

type RedisSuite struct {
	testcommon.Suite
	server  *miniredis.Miniredis
	storage *RedisStorage
}

func (s *RedisSuite) SetupTest() {
	s.server = miniredis.RunT(s.T())

	var err error
	s.storage, err = OpenRedisStorage(context.Background(), s.server.Addr(), s.Logger)
	s.Require().NoError(err)
}

func (s *RedisSuite) TearDownTest() {
	s.Require().NoError(s.storage.Close())
}

func (s *RedisSuite) fakeState() *protocol.State {
	state := protocol.NewState(s.FakeSeeds())
	players := s.FakePlayers(&state.Server, 4)
	state.Server.Meta.Target = gofakeit.Number(1, 30)
	state.Server.Start()
	state.Moves = []string{
		protocol.PassMove(players[0].ID).String(),
		protocol.PlayMove(players[1].ID, "B7").String(),
	}
	state.Players = protocol.PlayersList{{
		ID:                          players[0].ID,
		Name:                        players[0].Name,
		Online:                      true,
		OnlineTimestampMilliseconds: gofakeit.Int64(),
	}}
	return state
}

func (s *RedisSuite) TestRoundTrip() {
	roomID := protocol.NewRoomID(gofakeit.LetterN(8))

	_, err := s.storage.LoadRoomState(roomID)
	s.Require().ErrorIs(err, ErrRoomNotFound)

	state := s.fakeState()
	s.Require().NoError(s.storage.SaveRoomState(roomID, state))

	s.Require().True(s.server.Exists("game:" + roomID.String()))
	s.Require().Equal(state.Moves, s.mustList("moves:"+roomID.String()))
	s.Require().Equal(state.Server.Seeds.String(), s.mustHash("game:"+roomID.String(), "seed1")+"-"+
		s.mustHash("game:"+roomID.String(), "seed2")+"-"+
		s.mustHash("game:"+roomID.String(), "seed3")+"-"+
		s.mustHash("game:"+roomID.String(), "seed4"))

	loaded, err := s.storage.LoadRoomState(roomID)
	s.Require().NoError(err)
	s.Require().Equal(state, loaded)
}

func (s *RedisSuite) TestSaveReplacesMoves() {
	roomID := protocol.NewRoomID(gofakeit.LetterN(8))
	state := s.fakeState()
	s.Require().NoError(s.storage.SaveRoomState(roomID, state))

	state.Server.Reset(s.FakeSeeds())
	state.Moves = []string{}
	s.Require().NoError(s.storage.SaveRoomState(roomID, state))

	loaded, err := s.storage.LoadRoomState(roomID)
	s.Require().NoError(err)
	s.Require().Empty(loaded.Moves)
	s.Require().Equal(state.Server.Seeds, loaded.Server.Seeds)
	s.Require().False(loaded.Server.Started())
}

func (s *RedisSuite) TestAppendMove() {
	roomID := protocol.NewRoomID(gofakeit.LetterN(8))
	state := s.fakeState()
	s.Require().NoError(s.storage.SaveRoomState(roomID, state))

	token := protocol.UndoMove(state.Server.Seats[0].ID).String()
	s.Require().NoError(s.storage.AppendMove(roomID, token))

	loaded, err := s.storage.LoadRoomState(roomID)
	s.Require().NoError(err)
	s.Require().Equal(append(state.Moves, token), loaded.Moves)
}

func (s *RedisSuite) TestExpiration() {
	roomID := protocol.NewRoomID(gofakeit.LetterN(8))
	s.Require().NoError(s.storage.SaveRoomState(roomID, s.fakeState()))
	s.Require().Equal(RoomTTL, s.server.TTL("game:"+roomID.String()))

	s.server.FastForward(RoomTTL)

	_, err := s.storage.LoadRoomState(roomID)
	s.Require().ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisSuite) TestRemoteRooms() {
	local := NewLocalStorage(s.T().TempDir())
	s.Require().NoError(local.Initialize())

	service := WithRemoteRooms(local, NewRedisStorage(context.Background(), redis.NewClient(&redis.Options{
		Addr: s.server.Addr(),
	}), nil))

	roomID := protocol.NewRoomID(gofakeit.LetterN(8))
	state := s.fakeState()
	s.Require().NoError(service.SaveRoomState(roomID, state))
	s.Require().True(s.server.Exists("game:" + roomID.String()))

	_, err := local.LoadRoomState(roomID)
	s.Require().ErrorIs(err, ErrRoomNotFound)

	id := protocol.PlayerID(gofakeit.UUID())
	s.Require().NoError(service.SetPlayerID(id))
	s.Require().Equal(id, local.PlayerID())
}

func (s *RedisSuite) mustList(key string) []string {
	values, err := s.server.List(key)
	s.Require().NoError(err)
	return values
}

func (s *RedisSuite) mustHash(key, field string) string {
	return s.server.HGet(key, field)
}
