package protocol

import (
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

type Suit byte

const (
	Blue   Suit = 'B'
	Pink   Suit = 'P'
	Yellow Suit = 'Y'
	Green  Suit = 'G'
	Sub    Suit = 's'
)

// ColorSuits are the four ranked colors, in canonical deck order.
var ColorSuits = []Suit{Blue, Pink, Yellow, Green}

const (
	colorSuitCount = 4
	ColorRanks     = 9
	SubRanks       = 4
	DeckSize       = colorSuitCount*ColorRanks + SubRanks
)

// LeadTrump is held by the captain.
const LeadTrump Card = "s4"

var ErrInvalidCard = errors.New("invalid card")

func (s Suit) Valid() bool {
	return s == Sub || slices.Contains(ColorSuits, s)
}

// Size is the number of cards of the suit in the deck.
func (s Suit) Size() int {
	if s == Sub {
		return SubRanks
	}
	return ColorRanks
}

func (s Suit) String() string {
	return string(s)
}

// Card is encoded as the suit letter followed by the rank, e.g. "B7" or "s2".
type Card string

func NewCard(suit Suit, rank int) Card {
	return Card([]byte{byte(suit), byte('0' + rank)})
}

func ParseCard(input string) (Card, error) {
	card := Card(input)
	if !card.Valid() {
		return "", errors.Wrapf(ErrInvalidCard, "'%s'", input)
	}
	return card, nil
}

func (c Card) Valid() bool {
	if len(c) != 2 || !c.Suit().Valid() {
		return false
	}
	rank := c.Rank()
	return rank >= 1 && rank <= c.Suit().Size()
}

func (c Card) Suit() Suit {
	if len(c) == 0 {
		return 0
	}
	return Suit(c[0])
}

func (c Card) Rank() int {
	if len(c) < 2 {
		return 0
	}
	return int(c[1] - '0')
}

func (c Card) IsTrump() bool {
	return c.Suit() == Sub
}

func (c Card) String() string {
	return string(c)
}

// Deck is an ordered set of cards.
type Deck []Card

// NewDeck returns all cards in canonical order: colors first, then the sub suit.
// Shuffling depends on this order.
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for _, suit := range ColorSuits {
		for rank := 1; rank <= ColorRanks; rank++ {
			deck = append(deck, NewCard(suit, rank))
		}
	}
	for rank := 1; rank <= SubRanks; rank++ {
		deck = append(deck, NewCard(Sub, rank))
	}
	return deck
}

// CardsOfRank returns the color cards of the given rank. Sub cards are not included.
func CardsOfRank(rank int) []Card {
	cards := make([]Card, 0, len(ColorSuits))
	for _, suit := range ColorSuits {
		cards = append(cards, NewCard(suit, rank))
	}
	return cards
}

func (d Deck) Index(card Card) int {
	return slices.Index(d, card)
}

func (d Deck) Contains(card Card) bool {
	return d.Index(card) >= 0
}

// Remove deletes the card in place and reports whether it was present.
func (d *Deck) Remove(card Card) bool {
	index := d.Index(card)
	if index < 0 {
		return false
	}
	*d = slices.Delete(*d, index, index+1)
	return true
}

// Sort orders cards by their encoding, which puts the sub suit last.
func (d Deck) Sort() {
	sort.Slice(d, func(i, j int) bool {
		return d[i] < d[j]
	})
}

func (d Deck) Clone() Deck {
	return slices.Clone(d)
}
