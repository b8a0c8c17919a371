package protocol

import (
	"time"
)

type PlayerID string

// Player is a participant connected to a room.
type Player struct {
	ID     PlayerID `json:"id"`
	Name   string   `json:"name"`
	Online bool     `json:"online"`

	OnlineTimestampMilliseconds int64 `json:"onlineTimestampMilliseconds"`
}

func (p *Player) OnlineTime() time.Time {
	return time.UnixMilli(p.OnlineTimestampMilliseconds)
}

func (p *Player) Occupant() Occupant {
	return Occupant{
		ID:   p.ID,
		Name: p.Name,
	}
}
