package game

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/crew-cli/internal/transport"
	"github.com/six78/crew-cli/pkg/engine"
	"github.com/six78/crew-cli/pkg/protocol"
	"github.com/six78/crew-cli/pkg/storage"
)

var (
	ErrNoRoom             = errors.New("no room")
	ErrGameNotInitialized = errors.New("game not initialized")
)

// Game is a session in a room. The host keeps the authoritative state: seating,
// seeds and the append-only move log. Every participant rebuilds the deal from it.
type Game struct {
	logger       *zap.Logger
	ctx          context.Context
	transport    transport.Service
	storage      storage.Service
	matchLog     storage.MatchLog
	clock        clockwork.Clock
	exitRoom     chan struct{}
	messages     chan []byte
	events       *EventManager
	features     FeatureFlags
	codeControls codeControlFlags
	config       configuration

	mutex          sync.Mutex
	isHost         bool
	player         *protocol.Player
	room           *protocol.Room
	roomID         protocol.RoomID
	state          *protocol.State
	stateTimestamp int64

	// table is the deal rebuilt from state, applied holds the tokens it has seen.
	table      *engine.GameState
	applied    []string
	savedSeeds *protocol.Seeds
}

func NewGame(opts []Option) *Game {
	game := &Game{
		messages:     make(chan []byte, 42),
		events:       NewEventManager(),
		features:     defaultFeatureFlags(),
		codeControls: defaultCodeControlFlags(),
		config:       defaultConfig,
	}

	for _, opt := range opts {
		opt(game)
	}

	if game.ctx == nil {
		game.ctx = context.Background()
	}

	if game.logger == nil {
		game.logger = zap.NewNop()
	}

	if game.transport == nil {
		game.logger.Error("transport is required")
		return nil
	}

	if game.clock == nil {
		game.logger.Error("clock is required")
		return nil
	}

	return game
}

func (g *Game) Initialize() error {
	if g.HasStorage() {
		err := g.storage.Initialize()
		if err != nil {
			return errors.Wrap(err, "failed to create storage")
		}
	}

	player, err := g.loadPlayer()
	if err != nil {
		return err
	}

	player.Online = true
	g.player = player
	return nil
}

func (g *Game) Initialized() bool {
	return g.player != nil
}

func (g *Game) LeaveRoom() {
	if g.inRoom() {
		g.publishUserOnline(false)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	if g.exitRoom != nil {
		close(g.exitRoom)
	}

	g.logger.Info("left room", zap.String("roomID", g.roomID.String()))

	g.exitRoom = nil
	g.isHost = false
	g.room = nil
	g.roomID = protocol.NewRoomID("")
	g.state = nil
	g.stateTimestamp = 0
	g.resetTable()
	g.notifyChangedState(false)
}

func (g *Game) Stop() {
	g.LeaveRoom()
	g.events.Close()
}

// Subscribe delivers EventStateChanged, EventGameChanged and EventMatchSaved events.
func (g *Game) Subscribe() *Subscription {
	return g.events.Subscribe()
}

func (g *Game) handleMessage(payload []byte) {
	message, err := protocol.UnmarshalMessage(payload)
	if err != nil {
		g.logger.Error("failed to unmarshal message", zap.Error(err))
		return
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	logger := g.logger.With(zap.String("type", string(message.Type)))
	logger.Debug("handling message")

	switch message.Type {
	case protocol.MessageTypeState:
		if !g.isHost {
			g.handleStateMessage(payload)
		}

	case protocol.MessageTypePlayerOnline:
		if g.isHost {
			g.handlePlayerOnlineMessage(payload)
		}

	case protocol.MessageTypePlayerOffline:
		if g.isHost {
			g.handlePlayerOfflineMessage(payload)
		}

	case protocol.MessageTypePlayerMove:
		if g.isHost {
			g.handlePlayerMoveMessage(payload)
		}

	default:
		logger.Warn("unsupported message type")
	}
}

func (g *Game) handleStateMessage(payload []byte) {
	message, err := protocol.UnmarshalStateMessage(payload)
	if err != nil {
		g.logger.Error("failed to parse state message", zap.Error(err))
		return
	}

	if message.Timestamp < g.stateTimestamp {
		g.logger.Warn("ignoring outdated state message",
			zap.Int64("timestamp", message.Timestamp),
			zap.Int64("current", g.stateTimestamp))
		return
	}

	g.stateTimestamp = message.Timestamp
	g.state = &message.State
	g.notifyChangedState(false)
}

// notifyChangedState must be called with the mutex held.
func (g *Game) notifyChangedState(publish bool) {
	g.syncTable()

	state := g.state.Clone()
	g.events.Send(Event{Tag: EventStateChanged, Data: state})
	if g.table != nil {
		g.events.Send(Event{Tag: EventGameChanged, Data: g.table.Clone()})
	}

	if !g.isHost || state == nil {
		return
	}

	g.saveCompletedMatch()

	if publish {
		go g.publishState(state)
	}
}

func (g *Game) publishOnlineState(exitRoom chan struct{}) {
	g.publishUserOnline(true)
	for {
		select {
		case <-g.clock.After(g.config.OnlineMessagePeriod):
			g.publishUserOnline(true)
		case <-exitRoom:
			return
		case <-g.ctx.Done():
			return
		}
	}
}

func (g *Game) publishStateLoop(exitRoom chan struct{}) {
	logger := g.logger.With(zap.String("source", "state publish loop"))
	for {
		select {
		case <-g.clock.After(g.config.StateMessagePeriod):
			g.mutex.Lock()
			g.notifyChangedState(true)
			g.mutex.Unlock()
		case <-exitRoom:
			logger.Debug("finished: room left")
			return
		case <-g.ctx.Done():
			logger.Debug("finished: ctx done")
			return
		}
	}
}

func (g *Game) watchPlayersStateLoop(exitRoom chan struct{}) {
	ticker := g.clock.NewTicker(1 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-exitRoom:
			return
		case <-g.ctx.Done():
			return
		case <-ticker.Chan():
			g.mutex.Lock()
			if g.markOfflinePlayers() {
				g.notifyChangedState(true)
			}
			g.mutex.Unlock()
		}
	}
}

func (g *Game) markOfflinePlayers() bool {
	if g.state == nil {
		return false
	}
	changed := false
	now := g.clock.Now()
	for i, player := range g.state.Players {
		if !player.Online || now.Sub(player.OnlineTime()) < g.config.PlayerOnlineTimeout {
			continue
		}
		g.logger.Info("marking player as offline",
			zap.String("name", player.Name),
			zap.Int64("lastSeenAt", player.OnlineTimestampMilliseconds))
		g.state.Players[i].Online = false
		changed = true
	}
	return changed
}

func (g *Game) processIncomingMessages(sub *transport.Subscription, exitRoom chan struct{}) {
	if sub.Unsubscribe != nil {
		defer sub.Unsubscribe()
	}
	for {
		select {
		case payload, more := <-sub.Ch:
			if !more {
				return
			}
			g.handleMessage(payload)
		case <-exitRoom:
			return
		case <-g.ctx.Done():
			return
		}
	}
}

func (g *Game) loopPublishedMessages(exitRoom chan struct{}) {
	for {
		select {
		case <-exitRoom:
			return
		case <-g.ctx.Done():
			return
		case payload := <-g.messages:
			g.handleMessage(payload)
		}
	}
}

func (g *Game) publishMessage(message any) error {
	g.mutex.Lock()
	room := g.room
	isHost := g.isHost
	g.mutex.Unlock()

	if room == nil {
		return ErrNoRoom
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	err = g.transport.Publish(room, payload)

	// The host does not receive its own messages from the relay
	if isHost {
		g.messages <- payload
	}

	return err
}

func (g *Game) publishUserOnline(online bool) {
	g.mutex.Lock()
	player := *g.player
	g.mutex.Unlock()

	messageType := protocol.MessageTypePlayerOffline
	if online {
		messageType = protocol.MessageTypePlayerOnline
	}
	header := protocol.Message{
		Type:      messageType,
		Timestamp: g.timestamp(),
	}

	var message interface{}
	if online {
		message = protocol.PlayerOnlineMessage{Message: header, Player: player}
	} else {
		message = protocol.PlayerOfflineMessage{Message: header, Player: player}
	}

	err := g.publishMessage(message)
	if err != nil {
		g.logger.Error("failed to publish online state", zap.Error(err))
	}
}

func (g *Game) publishState(state *protocol.State) {
	if g.HasStorage() {
		err := g.storage.SaveRoomState(g.RoomID(), state)
		if err != nil {
			g.logger.Error("failed to save room state", zap.Error(err))
		}
	}

	err := g.publishMessage(protocol.GameStateMessage{
		Message: protocol.Message{
			Type:      protocol.MessageTypeState,
			Timestamp: g.timestamp(),
		},
		State: *state,
	})
	if err != nil {
		g.logger.Error("failed to publish state", zap.Error(err))
	}
}

func (g *Game) timestamp() int64 {
	return g.clock.Now().UnixMilli()
}

// CreateNewRoom generates a room key and a waiting deal with this player seated.
func (g *Game) CreateNewRoom() (*protocol.Room, *protocol.State, error) {
	if !g.Initialized() {
		return nil, nil, ErrGameNotInitialized
	}

	room, err := protocol.NewRoom()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create a new room")
	}

	state := protocol.NewState(protocol.NewSeeds())
	if g.config.Target > 0 {
		state.Server.Meta.Target = g.config.Target
	}

	player := *g.player
	player.OnlineTimestampMilliseconds = g.timestamp()
	state.Server.TakeSeat(player.Occupant())
	state.Players = append(state.Players, player)
	state.Timestamp = g.timestamp()

	return room, state, nil
}

// JoinRoom enters the room. Passing a state, or having one in storage, makes this game the host.
func (g *Game) JoinRoom(roomID protocol.RoomID, state *protocol.State) error {
	if !g.Initialized() {
		return ErrGameNotInitialized
	}
	if g.RoomID() == roomID {
		return errors.New("already in this room")
	}
	if g.inRoom() {
		return errors.New("exit current room to join another one")
	}
	if roomID.Empty() {
		return errors.New("empty room ID")
	}

	room, err := protocol.ParseRoomID(roomID.String())
	if err != nil {
		return errors.Wrap(err, "failed to join room")
	}

	if state == nil && g.HasStorage() {
		state = g.loadStateFromStorage(roomID)
	}

	sub, err := g.transport.Subscribe(room)
	if err != nil {
		return errors.Wrap(err, "failed to subscribe to messages")
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	exitRoom := make(chan struct{})
	g.exitRoom = exitRoom
	g.isHost = state != nil
	g.room = room
	g.roomID = roomID
	g.state = state
	g.stateTimestamp = 0
	g.resetTable()

	go g.loopPublishedMessages(exitRoom)
	go g.processIncomingMessages(sub, exitRoom)
	if g.codeControls.EnablePublishOnlineState {
		go g.publishOnlineState(exitRoom)
	}
	if g.isHost {
		if g.config.PublishStateLoopEnabled {
			go g.publishStateLoop(exitRoom)
		}
		go g.watchPlayersStateLoop(exitRoom)
		g.stateTimestamp = g.timestamp()
	}

	g.notifyChangedState(g.isHost)
	g.logger.Info("joined room",
		zap.String("roomID", roomID.String()),
		zap.Bool("isHost", g.isHost))

	return nil
}

func (g *Game) inRoom() bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.room != nil
}

func (g *Game) IsHost() bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.isHost
}

func (g *Game) Room() protocol.Room {
	return *g.room
}

func (g *Game) RoomID() protocol.RoomID {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.roomID
}

func (g *Game) Player() protocol.Player {
	return *g.player
}

// CurrentState returns a copy of the room state.
func (g *Game) CurrentState() *protocol.State {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.state.Clone()
}

// Table returns a copy of the rebuilt deal, nil until the deal starts.
func (g *Game) Table() *engine.GameState {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	if g.table == nil {
		return nil
	}
	return g.table.Clone()
}

func (g *Game) RenamePlayer(name string) error {
	if g.HasStorage() {
		err := g.storage.SetPlayerName(name)
		if err != nil {
			return errors.Wrap(err, "failed to save player name")
		}
	}

	g.mutex.Lock()
	g.player.Name = name
	g.mutex.Unlock()

	g.publishUserOnline(true)
	return nil
}

func (g *Game) loadPlayer() (*protocol.Player, error) {
	var err error
	var player protocol.Player

	if g.HasStorage() {
		player.ID = g.storage.PlayerID()
	}

	if player.ID == "" {
		player.ID, err = GeneratePlayerID()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate player ID")
		}

		if g.HasStorage() {
			err = g.storage.SetPlayerID(player.ID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to save player ID")
			}
		}
	}

	if g.config.PlayerName != "" {
		player.Name = g.config.PlayerName
	} else if g.HasStorage() {
		player.Name = g.storage.PlayerName()
	}

	return &player, nil
}

func nilStorage(s storage.Service) bool {
	return s == nil || reflect.ValueOf(s).IsNil()
}

func (g *Game) HasStorage() bool {
	return !nilStorage(g.storage)
}

func (g *Game) loadStateFromStorage(roomID protocol.RoomID) *protocol.State {
	state, err := g.storage.LoadRoomState(roomID)
	if err != nil {
		g.logger.Info("room not found in storage", zap.Error(err))
		return nil
	}
	g.logger.Info("loaded room from storage", zap.String("roomID", roomID.String()))

	now := g.clock.Now()
	for i := range state.Players {
		state.Players[i].Online = now.Sub(state.Players[i].OnlineTime()) < g.config.PlayerOnlineTimeout
	}

	return state
}
