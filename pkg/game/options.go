package game

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/six78/crew-cli/internal/transport"
	"github.com/six78/crew-cli/pkg/storage"
)

type Option func(*Game)

func WithContext(ctx context.Context) Option {
	return func(g *Game) {
		g.ctx = ctx
	}
}

func WithTransport(t transport.Service) Option {
	return func(g *Game) {
		g.transport = t
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

func WithStorage(s storage.Service) Option {
	return func(g *Game) {
		g.storage = s
	}
}

// WithMatchLog stores the summary of every completed deal hosted by this game.
func WithMatchLog(l storage.MatchLog) Option {
	return func(g *Game) {
		g.matchLog = l
	}
}

func WithClock(c clockwork.Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

func WithPlayerName(name string) Option {
	return func(g *Game) {
		g.config.PlayerName = name
	}
}

// WithTarget sets the mission difficulty of rooms created by this game.
func WithTarget(target int) Option {
	return func(g *Game) {
		g.config.Target = target
	}
}

func WithOnlineMessagePeriod(d time.Duration) Option {
	return func(g *Game) {
		g.config.OnlineMessagePeriod = d
	}
}

func WithStateMessagePeriod(d time.Duration) Option {
	return func(g *Game) {
		g.config.StateMessagePeriod = d
	}
}

func WithPlayerOnlineTimeout(d time.Duration) Option {
	return func(g *Game) {
		g.config.PlayerOnlineTimeout = d
	}
}

func WithPublishStateLoop(enabled bool) Option {
	return func(g *Game) {
		g.config.PublishStateLoopEnabled = enabled
	}
}

func WithMissionValidation(enabled bool) Option {
	return func(g *Game) {
		g.config.ValidateMissions = enabled
	}
}

func WithFeatures(features FeatureFlags) Option {
	return func(g *Game) {
		g.features = features
	}
}
