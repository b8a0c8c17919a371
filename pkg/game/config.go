package game

import "time"

type configuration struct {
	PlayerName              string
	Target                  int
	OnlineMessagePeriod     time.Duration
	StateMessagePeriod      time.Duration
	PlayerOnlineTimeout     time.Duration
	PublishStateLoopEnabled bool
	ValidateMissions        bool
}

var defaultConfig = configuration{
	PlayerName:              "",
	Target:                  0,
	OnlineMessagePeriod:     5 * time.Second,
	StateMessagePeriod:      30 * time.Second,
	PlayerOnlineTimeout:     20 * time.Second,
	PublishStateLoopEnabled: true,
	ValidateMissions:        true,
}
