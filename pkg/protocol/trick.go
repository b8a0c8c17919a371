package protocol

type PlayedCard struct {
	Card     Card    `json:"card"`
	Position SeatKey `json:"position"`
}

type Trick struct {
	Cards []PlayedCard `json:"cards"`
	Index int          `json:"index"`
}

// Lead returns the first card of the trick. The trick must not be empty.
func (t *Trick) Lead() PlayedCard {
	return t.Cards[0]
}

// Winner returns the highest sub card if any was played,
// otherwise the highest card of the lead suit. The trick must not be empty.
func (t *Trick) Winner() PlayedCard {
	return TrickWinner(t.Cards)
}

func (t *Trick) Contains(card Card) bool {
	for _, played := range t.Cards {
		if played.Card == card {
			return true
		}
	}
	return false
}

func (t *Trick) ContainsTrump() bool {
	for _, played := range t.Cards {
		if played.Card.IsTrump() {
			return true
		}
	}
	return false
}

// CountSuit returns the number of cards of the suit in the trick.
func (t *Trick) CountSuit(suit Suit) int {
	count := 0
	for _, played := range t.Cards {
		if played.Card.Suit() == suit {
			count++
		}
	}
	return count
}

func (t *Trick) Clone() Trick {
	cards := make([]PlayedCard, len(t.Cards))
	copy(cards, t.Cards)
	return Trick{
		Cards: cards,
		Index: t.Index,
	}
}

func TrickWinner(cards []PlayedCard) PlayedCard {
	suit := cards[0].Card.Suit()
	for _, played := range cards {
		if played.Card.IsTrump() {
			suit = Sub
			break
		}
	}

	winner := cards[0]
	for _, played := range cards {
		if played.Card.Suit() != suit {
			continue
		}
		if winner.Card.Suit() != suit || played.Card.Rank() > winner.Card.Rank() {
			winner = played
		}
	}
	return winner
}
