package engine

import (
	"github.com/six78/crew-cli/pkg/protocol"
)

// ClassifySignal tells where the card sits among the same-suit cards of the hand.
// Cards that are neither highest nor lowest of their suit can't be signalled.
func ClassifySignal(card protocol.Card, hand protocol.Deck) (protocol.HintType, bool) {
	if !card.Valid() {
		return "", false
	}

	higher, lower := false, false
	for _, other := range hand {
		if other == card || other.Suit() != card.Suit() {
			continue
		}
		if other.Rank() > card.Rank() {
			higher = true
		} else {
			lower = true
		}
	}

	switch {
	case !higher && !lower:
		return protocol.HintOnly, true
	case !higher:
		return protocol.HintTop, true
	case !lower:
		return protocol.HintBottom, true
	}
	return "", false
}

type queuedHint struct {
	sender protocol.PlayerID
	hint   *protocol.Hint
}

// hintQueue holds signals sent while a trick is open.
// A sender keeps a single slot, later signals overwrite it.
type hintQueue struct {
	order []protocol.PlayerID
	hints map[protocol.PlayerID]*protocol.Hint
}

func newHintQueue() *hintQueue {
	return &hintQueue{
		hints: map[protocol.PlayerID]*protocol.Hint{},
	}
}

func (q *hintQueue) push(sender protocol.PlayerID, hint *protocol.Hint) {
	if _, ok := q.hints[sender]; !ok {
		q.order = append(q.order, sender)
	}
	q.hints[sender] = hint.Clone()
}

func (q *hintQueue) drain() []queuedHint {
	result := make([]queuedHint, 0, len(q.order))
	for _, sender := range q.order {
		result = append(result, queuedHint{sender: sender, hint: q.hints[sender]})
	}
	q.order = nil
	q.hints = map[protocol.PlayerID]*protocol.Hint{}
	return result
}

func (q *hintQueue) Len() int {
	return len(q.order)
}

func (q *hintQueue) clone() *hintQueue {
	clone := newHintQueue()
	for _, sender := range q.order {
		clone.push(sender, q.hints[sender])
	}
	return clone
}
