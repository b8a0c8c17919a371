package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/crew-cli/pkg/protocol"
)

// RoomTTL is how long an idle room is kept by the relay.
const RoomTTL = time.Hour

// RedisStorage keeps rooms the way the relay does: the server state as a flat
// hash under game:<room> and the move log as a list under moves:<room>.
type RedisStorage struct {
	ctx    context.Context
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisStorage(ctx context.Context, client *redis.Client, logger *zap.Logger) *RedisStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStorage{
		ctx:    ctx,
		client: client,
		ttl:    RoomTTL,
		logger: logger.Named("redis"),
	}
}

func OpenRedisStorage(ctx context.Context, address string, logger *zap.Logger) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr: address,
	})
	err := client.Ping(ctx).Err()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to redis at %s", address)
	}
	return NewRedisStorage(ctx, client, logger), nil
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}

func gameKey(roomID protocol.RoomID) string {
	return "game:" + roomID.String()
}

func movesKey(roomID protocol.RoomID) string {
	return "moves:" + roomID.String()
}

func playersKey(roomID protocol.RoomID) string {
	return "players:" + roomID.String()
}

func (s *RedisStorage) SaveRoomState(roomID protocol.RoomID, state *protocol.State) error {
	hash, err := state.Server.ToHash()
	if err != nil {
		return errors.Wrap(err, "failed to encode server state")
	}
	fields := make(map[string]interface{}, len(hash))
	for key, value := range hash {
		fields[key] = value
	}

	players, err := json.Marshal(state.Players)
	if err != nil {
		return errors.Wrap(err, "failed to marshal players")
	}

	moves := make([]interface{}, 0, len(state.Moves))
	for _, token := range state.Moves {
		moves = append(moves, token)
	}

	_, err = s.client.TxPipelined(s.ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(s.ctx, gameKey(roomID), movesKey(roomID))
		pipe.HSet(s.ctx, gameKey(roomID), fields)
		pipe.Expire(s.ctx, gameKey(roomID), s.ttl)
		if len(moves) > 0 {
			pipe.RPush(s.ctx, movesKey(roomID), moves...)
			pipe.Expire(s.ctx, movesKey(roomID), s.ttl)
		}
		pipe.Set(s.ctx, playersKey(roomID), players, s.ttl)
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to save room state")
	}

	s.logger.Debug("room saved",
		zap.String("roomID", roomID.String()),
		zap.Int("moves", len(moves)))
	return nil
}

// AppendMove adds a token to the move log of a room and refreshes its expiration.
func (s *RedisStorage) AppendMove(roomID protocol.RoomID, token string) error {
	_, err := s.client.TxPipelined(s.ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(s.ctx, movesKey(roomID), token)
		pipe.Expire(s.ctx, movesKey(roomID), s.ttl)
		pipe.Expire(s.ctx, gameKey(roomID), s.ttl)
		return nil
	})
	return errors.Wrap(err, "failed to append move")
}

func (s *RedisStorage) LoadRoomState(roomID protocol.RoomID) (*protocol.State, error) {
	hash, err := s.client.HGetAll(s.ctx, gameKey(roomID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read server state")
	}
	if len(hash) == 0 {
		return nil, errors.Wrap(ErrRoomNotFound, roomID.String())
	}

	server, err := protocol.ServerStateFromHash(hash)
	if err != nil {
		return nil, err
	}

	moves, err := s.client.LRange(s.ctx, movesKey(roomID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read moves")
	}

	players := protocol.PlayersList{}
	data, err := s.client.Get(s.ctx, playersKey(roomID)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return nil, errors.Wrap(err, "failed to read players")
	default:
		err = json.Unmarshal(data, &players)
		if err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal players")
		}
	}

	return &protocol.State{
		Server:  server,
		Moves:   moves,
		Players: players,
	}, nil
}
