package missions

import (
	"github.com/six78/crew-cli/pkg/protocol"
)

type cardFilter func(card protocol.Card) bool

func ofSuit(suit protocol.Suit) cardFilter {
	return func(card protocol.Card) bool {
		return card.Suit() == suit
	}
}

// ofRank matches color cards of the rank. Subs never match a rank.
func ofRank(rank int) cardFilter {
	return func(card protocol.Card) bool {
		return !card.IsTrump() && card.Rank() == rank
	}
}

// evaluation is a snapshot of the round from the point of view of one seat.
type evaluation struct {
	round   *Round
	seat    protocol.SeatKey
	secretX *int

	tricks    []*protocol.Trick
	winners   []protocol.SeatKey
	tricksWon map[protocol.SeatKey]int

	played map[protocol.Card]bool
	won    map[protocol.Card]bool
	lost   map[protocol.Card]bool
}

func newEvaluation(round *Round, seat protocol.SeatKey) *evaluation {
	e := &evaluation{
		round:     round,
		seat:      seat,
		tricks:    make([]*protocol.Trick, 0, len(round.Tricks)),
		winners:   make([]protocol.SeatKey, 0, len(round.Tricks)),
		tricksWon: make(map[protocol.SeatKey]int, len(round.Seats)),
		played:    make(map[protocol.Card]bool, protocol.DeckSize),
		won:       make(map[protocol.Card]bool),
		lost:      make(map[protocol.Card]bool),
	}

	for i := range round.Tricks {
		trick := &round.Tricks[i]
		if len(trick.Cards) == 0 {
			continue
		}
		winner := trick.Winner().Position
		e.tricks = append(e.tricks, trick)
		e.winners = append(e.winners, winner)
		e.tricksWon[winner]++

		for _, played := range trick.Cards {
			e.played[played.Card] = true
			if winner == seat {
				e.won[played.Card] = true
			} else {
				e.lost[played.Card] = true
			}
		}
	}

	return e
}

func (e *evaluation) tricksPlayed() int {
	return len(e.winners)
}

func (e *evaluation) tricksRemaining() int {
	remaining := e.round.TotalTricks - e.tricksPlayed()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// gameOver is reached when every trick of the round is played.
// In a 3-player round one card is never played.
func (e *evaluation) gameOver() bool {
	return e.tricksPlayed() >= e.round.TotalTricks
}

func (e *evaluation) lastTrickIndex() int {
	return e.round.TotalTricks - 1
}

func (e *evaluation) numWon() int {
	return e.tricksWon[e.seat]
}

func (e *evaluation) others() []protocol.SeatKey {
	others := make([]protocol.SeatKey, 0, len(e.round.Seats))
	for _, seat := range e.round.Seats {
		if seat != e.seat {
			others = append(others, seat)
		}
	}
	return others
}

// trickWon returns whether the trick at index was won by the seat
// and whether the trick has been played at all.
func (e *evaluation) trickWon(index int) (won bool, played bool) {
	if index < 0 || index >= len(e.winners) {
		return false, false
	}
	return e.winners[index] == e.seat, true
}

func (e *evaluation) trickLost(index int) bool {
	won, played := e.trickWon(index)
	return played && !won
}

func (e *evaluation) wonTricks() []*protocol.Trick {
	tricks := make([]*protocol.Trick, 0, e.numWon())
	for i, winner := range e.winners {
		if winner == e.seat {
			tricks = append(tricks, e.tricks[i])
		}
	}
	return tricks
}

// wonIndices returns the indices of the won tricks in ascending order.
func (e *evaluation) wonIndices() []int {
	indices := make([]int, 0, e.numWon())
	for i, winner := range e.winners {
		if winner == e.seat {
			indices = append(indices, i)
		}
	}
	return indices
}

// longestRun is the longest sequence of consecutive won tricks.
func (e *evaluation) longestRun() int {
	longest, current := 0, 0
	for _, winner := range e.winners {
		if winner == e.seat {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	return longest
}

// trailingRun is the number of consecutive won tricks ending with the latest trick.
func (e *evaluation) trailingRun() int {
	run := 0
	for i := len(e.winners) - 1; i >= 0 && e.winners[i] == e.seat; i-- {
		run++
	}
	return run
}

func (e *evaluation) wonCard(card protocol.Card) bool {
	return e.won[card]
}

func (e *evaluation) lostCard(card protocol.Card) bool {
	return e.lost[card]
}

func (e *evaluation) playedCard(card protocol.Card) bool {
	return e.played[card]
}

func count(cards map[protocol.Card]bool, filter cardFilter) int {
	n := 0
	for card := range cards {
		if filter(card) {
			n++
		}
	}
	return n
}

func (e *evaluation) countWon(filter cardFilter) int {
	return count(e.won, filter)
}

func (e *evaluation) countLost(filter cardFilter) int {
	return count(e.lost, filter)
}

func (e *evaluation) countPlayed(filter cardFilter) int {
	return count(e.played, filter)
}

// unresolved is the number of cards matching the filter that can still be won or lost.
func (e *evaluation) unresolved(filter cardFilter, population int) int {
	if e.gameOver() {
		return 0
	}
	return population - e.countPlayed(filter)
}

// ledWith reports whether the seat opened any trick with a card of the suit.
func (e *evaluation) ledWith(suit protocol.Suit) bool {
	for _, trick := range e.tricks {
		lead := trick.Lead()
		if lead.Position == e.seat && lead.Card.Suit() == suit {
			return true
		}
	}
	return false
}
