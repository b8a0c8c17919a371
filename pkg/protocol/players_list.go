package protocol

import "golang.org/x/exp/slices"

type PlayersList []Player

func (l PlayersList) Get(id PlayerID) (Player, bool) {
	index := l.Index(id)
	if index < 0 {
		return Player{}, false
	}
	return l[index], true
}

func (l PlayersList) Index(id PlayerID) int {
	return slices.IndexFunc(l, func(player Player) bool {
		return player.ID == id
	})
}
