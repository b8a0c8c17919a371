package game

import (
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/six78/crew-cli/pkg/protocol"
)

// Host handlers. All of them run with the mutex held.

func (g *Game) handlePlayerOnlineMessage(payload []byte) {
	message, err := protocol.UnmarshalPlayerOnlineMessage(payload)
	if err != nil {
		g.logger.Error("failed to parse player online message", zap.Error(err))
		return
	}

	player := message.Player
	changed := false

	if !g.state.Server.Started() {
		before := g.state.Server.Seats
		if _, ok := g.state.Server.TakeSeat(player.Occupant()); !ok {
			g.logger.Info("no free seat", zap.String("playerID", string(player.ID)))
		}
		changed = before != g.state.Server.Seats
	}

	index := g.state.Players.Index(player.ID)
	if index < 0 {
		player.Online = true
		player.OnlineTimestampMilliseconds = g.timestamp()
		g.state.Players = append(g.state.Players, player)
		g.logger.Info("player joined", zap.Any("player", player))
		g.notifyChangedState(true)
		return
	}

	current := &g.state.Players[index]
	changed = changed || !current.Online || current.Name != player.Name

	current.OnlineTimestampMilliseconds = g.timestamp()
	current.Online = true
	current.Name = player.Name

	if changed {
		g.notifyChangedState(true)
	}
}

func (g *Game) handlePlayerOfflineMessage(payload []byte) {
	message, err := protocol.UnmarshalPlayerOfflineMessage(payload)
	if err != nil {
		g.logger.Error("failed to parse player offline message", zap.Error(err))
		return
	}

	g.logger.Info("player is offline", zap.String("playerID", string(message.Player.ID)))

	index := g.state.Players.Index(message.Player.ID)
	if index < 0 {
		return
	}

	g.state.Players[index].Online = false
	if !g.state.Server.Started() {
		g.state.Server.LeaveSeat(message.Player.ID)
	}
	g.notifyChangedState(true)
}

// handlePlayerMoveMessage appends the move of a participant of the running deal to the log.
// Legality is decided by everyone when the log is applied.
func (g *Game) handlePlayerMoveMessage(payload []byte) {
	message, err := protocol.UnmarshalPlayerMoveMessage(payload)
	if err != nil {
		g.logger.Error("failed to parse move message", zap.Error(err))
		return
	}

	move, err := protocol.ParseMove(message.Move)
	if err != nil {
		g.logger.Warn("rejecting malformed move", zap.String("token", message.Move), zap.Error(err))
		return
	}

	if !g.state.Server.Started() {
		g.logger.Warn("rejecting move before start", zap.String("token", message.Move))
		return
	}

	seat, ok := g.state.Server.SeatOf(move.Sender)
	if !ok || !slices.Contains(g.state.Server.StartingSeats, seat) {
		g.logger.Warn("rejecting move of a non-participant", zap.String("token", message.Move))
		return
	}

	g.state.Moves = append(g.state.Moves, move.String())
	g.notifyChangedState(true)
}
