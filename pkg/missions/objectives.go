package missions

import (
	"fmt"
	"strings"

	"github.com/six78/crew-cli/pkg/protocol"
)

// Objective is the rule of a template. Every family decides both outcomes:
// failed is only consulted when passed is false.
type Objective interface {
	passed(e *evaluation) bool
	failed(e *evaluation) bool
	describe(numPlayers int) string
}

var suitNames = map[protocol.Suit]string{
	protocol.Blue:   "blue",
	protocol.Pink:   "pink",
	protocol.Yellow: "yellow",
	protocol.Green:  "green",
	protocol.Sub:    "sub",
}

func joinSuits(suits []protocol.Suit, sep string) string {
	names := make([]string, 0, len(suits))
	for _, suit := range suits {
		names = append(names, suitNames[suit])
	}
	return strings.Join(names, sep)
}

func joinCards(cards []protocol.Card) string {
	names := make([]string, 0, len(cards))
	for _, card := range cards {
		names = append(names, card.String())
	}
	return strings.Join(names, " ")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// WinCards: win every card of Cards and none of Forbidden.
type WinCards struct {
	Cards     []protocol.Card
	Forbidden []protocol.Card
}

func (o WinCards) passed(e *evaluation) bool {
	for _, card := range o.Cards {
		if !e.wonCard(card) {
			return false
		}
	}
	for _, card := range o.Forbidden {
		if e.wonCard(card) || !(e.lostCard(card) || e.gameOver()) {
			return false
		}
	}
	return true
}

func (o WinCards) failed(e *evaluation) bool {
	for _, card := range o.Cards {
		if e.lostCard(card) {
			return true
		}
	}
	for _, card := range o.Forbidden {
		if e.wonCard(card) {
			return true
		}
	}
	return false
}

func (o WinCards) describe(int) string {
	text := "I will win " + joinCards(o.Cards)
	if len(o.Forbidden) > 0 {
		text += " and not " + joinCards(o.Forbidden)
	}
	return text
}

// AvoidNumbers: win no color card of the ranks.
type AvoidNumbers struct {
	Ranks []int
}

func (o AvoidNumbers) passed(e *evaluation) bool {
	for _, rank := range o.Ranks {
		if e.countWon(ofRank(rank)) > 0 {
			return false
		}
		if e.countLost(ofRank(rank)) < len(protocol.ColorSuits) && !e.gameOver() {
			return false
		}
	}
	return true
}

func (o AvoidNumbers) failed(e *evaluation) bool {
	for _, rank := range o.Ranks {
		if e.countWon(ofRank(rank)) > 0 {
			return true
		}
	}
	return false
}

func (o AvoidNumbers) describe(int) string {
	ranks := make([]string, 0, len(o.Ranks))
	for _, rank := range o.Ranks {
		ranks = append(ranks, fmt.Sprintf("%d", rank))
	}
	return "I will win no " + strings.Join(ranks, ", ") + "s"
}

// AvoidSuits: win no card of the suits.
type AvoidSuits struct {
	Suits []protocol.Suit
}

func (o AvoidSuits) passed(e *evaluation) bool {
	for _, suit := range o.Suits {
		if e.countWon(ofSuit(suit)) > 0 {
			return false
		}
		if e.countLost(ofSuit(suit)) < suit.Size() && !e.gameOver() {
			return false
		}
	}
	return true
}

func (o AvoidSuits) failed(e *evaluation) bool {
	for _, suit := range o.Suits {
		if e.countWon(ofSuit(suit)) > 0 {
			return true
		}
	}
	return false
}

func (o AvoidSuits) describe(int) string {
	return "I will win no " + joinSuits(o.Suits, " or ")
}

// WinWithNumber: win a trick with a color card of rank With.
// When Capturing is set, the trick must also hold another color card of that rank.
type WinWithNumber struct {
	With      int
	Capturing int
}

func (o WinWithNumber) passed(e *evaluation) bool {
	for _, trick := range e.wonTricks() {
		winner := trick.Winner().Card
		if winner.IsTrump() || winner.Rank() != o.With {
			continue
		}
		if o.Capturing == 0 {
			return true
		}
		for _, played := range trick.Cards {
			if played.Card != winner && ofRank(o.Capturing)(played.Card) {
				return true
			}
		}
	}
	return false
}

func (o WinWithNumber) failed(e *evaluation) bool {
	population := len(protocol.ColorSuits)
	if e.countPlayed(ofRank(o.With)) == population {
		return true
	}
	return o.Capturing != 0 && e.countPlayed(ofRank(o.Capturing)) == population
}

func (o WinWithNumber) describe(int) string {
	if o.Capturing == 0 {
		return fmt.Sprintf("I will win a trick using a %d", o.With)
	}
	return fmt.Sprintf("I will win a %d with a %d", o.Capturing, o.With)
}

// WinWithTrump: win the card in a trick taken by a sub.
type WinWithTrump struct {
	Card protocol.Card
}

func (o WinWithTrump) passed(e *evaluation) bool {
	for _, trick := range e.wonTricks() {
		if trick.Winner().Card.IsTrump() && trick.Contains(o.Card) {
			return true
		}
	}
	return false
}

func (o WinWithTrump) failed(e *evaluation) bool {
	return e.playedCard(o.Card)
}

func (o WinWithTrump) describe(int) string {
	return fmt.Sprintf("I will win %s with a sub", o.Card)
}

// cardCount is a requirement on how many cards of a group are won.
type cardCount struct {
	filter     cardFilter
	population int
	count      int
	exact      bool
}

func (c cardCount) passed(e *evaluation) bool {
	won := e.countWon(c.filter)
	if !c.exact {
		return won >= c.count
	}
	resolved := e.countPlayed(c.filter) == c.population || e.gameOver()
	return won == c.count && resolved
}

func (c cardCount) failed(e *evaluation) bool {
	if e.countLost(c.filter) > c.population-c.count {
		return true
	}
	return c.exact && e.countWon(c.filter) > c.count
}

func quantifier(exact bool) string {
	if exact {
		return "exactly"
	}
	return "at least"
}

// NumberCount: win exactly or at least Count color cards of the rank.
type NumberCount struct {
	Rank  int
	Count int
	Exact bool
}

func (o NumberCount) requirement() cardCount {
	return cardCount{
		filter:     ofRank(o.Rank),
		population: len(protocol.ColorSuits),
		count:      o.Count,
		exact:      o.Exact,
	}
}

func (o NumberCount) passed(e *evaluation) bool {
	return o.requirement().passed(e)
}

func (o NumberCount) failed(e *evaluation) bool {
	return o.requirement().failed(e)
}

func (o NumberCount) describe(int) string {
	return fmt.Sprintf("I will win %s %d %ds", quantifier(o.Exact), o.Count, o.Rank)
}

type SuitCount struct {
	Suit  protocol.Suit
	Count int
	Exact bool
}

func (c SuitCount) requirement() cardCount {
	return cardCount{
		filter:     ofSuit(c.Suit),
		population: c.Suit.Size(),
		count:      c.Count,
		exact:      c.Exact,
	}
}

// SuitCounts: every listed suit requirement holds.
type SuitCounts struct {
	Counts []SuitCount
}

func (o SuitCounts) passed(e *evaluation) bool {
	for _, c := range o.Counts {
		if !c.requirement().passed(e) {
			return false
		}
	}
	return true
}

func (o SuitCounts) failed(e *evaluation) bool {
	for _, c := range o.Counts {
		if c.requirement().failed(e) {
			return true
		}
	}
	return false
}

func (o SuitCounts) describe(int) string {
	parts := make([]string, 0, len(o.Counts))
	for _, c := range o.Counts {
		parts = append(parts, fmt.Sprintf("%s %s", quantifier(c.Exact), plural(c.Count, suitNames[c.Suit]+" card")))
	}
	return "I will win " + strings.Join(parts, " and ")
}

// exact trick count rules shared by TrickCount and SecretTrickCount
func exactTrickCountPassed(e *evaluation, n int) bool {
	return e.gameOver() && e.numWon() == n
}

func exactTrickCountFailed(e *evaluation, n int) bool {
	won := e.numWon()
	return won > n || won+e.tricksRemaining() < n
}

// TrickCount: win exactly N tricks.
type TrickCount struct {
	N int
}

func (o TrickCount) passed(e *evaluation) bool {
	return exactTrickCountPassed(e, o.N)
}

func (o TrickCount) failed(e *evaluation) bool {
	return exactTrickCountFailed(e, o.N)
}

func (o TrickCount) describe(int) string {
	return "I will win exactly " + plural(o.N, "trick")
}

// SecretTrickCount: win exactly X tricks, X chosen by the assignee while drafting.
type SecretTrickCount struct {
	Public bool
}

func (o SecretTrickCount) passed(e *evaluation) bool {
	return e.secretX != nil && exactTrickCountPassed(e, *e.secretX)
}

func (o SecretTrickCount) failed(e *evaluation) bool {
	return e.secretX != nil && exactTrickCountFailed(e, *e.secretX)
}

func (o SecretTrickCount) describe(int) string {
	return o.describeWith(nil)
}

func (o SecretTrickCount) describeWith(x *int) string {
	visibility := "secret"
	if o.Public {
		visibility = "public"
	}
	value := "X"
	if x != nil {
		value = fmt.Sprint(*x)
	}
	return fmt.Sprintf("I will win exactly %s tricks (%s)", value, visibility)
}

// FirstTricks: win each of the first N tricks.
type FirstTricks struct {
	N int
}

func (o FirstTricks) passed(e *evaluation) bool {
	for i := 0; i < o.N; i++ {
		if won, _ := e.trickWon(i); !won {
			return false
		}
	}
	return true
}

func (o FirstTricks) failed(e *evaluation) bool {
	for i := 0; i < o.N; i++ {
		if e.trickLost(i) {
			return true
		}
	}
	return false
}

func (o FirstTricks) describe(int) string {
	if o.N == 1 {
		return "I will win the first trick"
	}
	return fmt.Sprintf("I will win the first %d tricks", o.N)
}

// LastTricks: win each of the last N tricks.
type LastTricks struct {
	N int
}

func (o LastTricks) window(e *evaluation) (int, int) {
	return e.round.TotalTricks - o.N, e.round.TotalTricks
}

func (o LastTricks) passed(e *evaluation) bool {
	from, to := o.window(e)
	for i := from; i < to; i++ {
		if won, _ := e.trickWon(i); !won {
			return false
		}
	}
	return true
}

func (o LastTricks) failed(e *evaluation) bool {
	from, to := o.window(e)
	for i := from; i < to; i++ {
		if e.trickLost(i) {
			return true
		}
	}
	return false
}

func (o LastTricks) describe(int) string {
	if o.N == 1 {
		return "I will win the last trick"
	}
	return fmt.Sprintf("I will win the last %d tricks", o.N)
}

// FirstAndLastTricks: win the first and the last trick.
type FirstAndLastTricks struct{}

func (o FirstAndLastTricks) passed(e *evaluation) bool {
	first, _ := e.trickWon(0)
	last, _ := e.trickWon(e.lastTrickIndex())
	return first && last
}

func (o FirstAndLastTricks) failed(e *evaluation) bool {
	return e.trickLost(0) || e.trickLost(e.lastTrickIndex())
}

func (o FirstAndLastTricks) describe(int) string {
	return "I will win the first and the last trick"
}

// onlyWindow decides "win exactly the tricks in [from, to)".
func onlyWindowPassed(e *evaluation, from, to int) bool {
	if !e.gameOver() {
		return false
	}
	for i := range e.winners {
		won, _ := e.trickWon(i)
		if won != (i >= from && i < to) {
			return false
		}
	}
	return true
}

func onlyWindowFailed(e *evaluation, from, to int) bool {
	for i := range e.winners {
		won, _ := e.trickWon(i)
		if won != (i >= from && i < to) {
			return true
		}
	}
	return false
}

// OnlyFirstTricks: win the first N tricks and no other.
type OnlyFirstTricks struct {
	N int
}

func (o OnlyFirstTricks) passed(e *evaluation) bool {
	return onlyWindowPassed(e, 0, o.N)
}

func (o OnlyFirstTricks) failed(e *evaluation) bool {
	return onlyWindowFailed(e, 0, o.N)
}

func (o OnlyFirstTricks) describe(int) string {
	if o.N == 1 {
		return "I will win only the first trick"
	}
	return fmt.Sprintf("I will win only the first %d tricks", o.N)
}

// OnlyLastTricks: win the last N tricks and no other.
type OnlyLastTricks struct {
	N int
}

func (o OnlyLastTricks) passed(e *evaluation) bool {
	return onlyWindowPassed(e, e.round.TotalTricks-o.N, e.round.TotalTricks)
}

func (o OnlyLastTricks) failed(e *evaluation) bool {
	return onlyWindowFailed(e, e.round.TotalTricks-o.N, e.round.TotalTricks)
}

func (o OnlyLastTricks) describe(int) string {
	if o.N == 1 {
		return "I will win only the last trick"
	}
	return fmt.Sprintf("I will win only the last %d tricks", o.N)
}

// ConsecutiveTricks: win N tricks in a row at some point.
type ConsecutiveTricks struct {
	N int
}

func (o ConsecutiveTricks) passed(e *evaluation) bool {
	return e.longestRun() >= o.N
}

func (o ConsecutiveTricks) failed(e *evaluation) bool {
	return e.trailingRun()+e.tricksRemaining() < o.N
}

func (o ConsecutiveTricks) describe(int) string {
	return fmt.Sprintf("I will win %d tricks in a row", o.N)
}

// ExactConsecutiveTricks: win exactly N tricks, all of them in a row.
type ExactConsecutiveTricks struct {
	N int
}

func (o ExactConsecutiveTricks) passed(e *evaluation) bool {
	if !e.gameOver() {
		return false
	}
	indices := e.wonIndices()
	return len(indices) == o.N && (o.N == 0 || indices[len(indices)-1]-indices[0]+1 == o.N)
}

func (o ExactConsecutiveTricks) failed(e *evaluation) bool {
	indices := e.wonIndices()
	won := len(indices)
	if won > o.N {
		return true
	}
	if won == 0 {
		return e.tricksRemaining() < o.N
	}

	if indices[won-1]-indices[0]+1 != won {
		return true
	}
	streakAlive := indices[won-1] == e.tricksPlayed()-1
	if !streakAlive {
		return won != o.N
	}
	return won+e.tricksRemaining() < o.N
}

func (o ExactConsecutiveTricks) describe(int) string {
	return fmt.Sprintf("I will win exactly %d tricks and they will be in a row", o.N)
}

// NoConsecutiveTricks: never win N tricks in a row.
type NoConsecutiveTricks struct {
	N int
}

func (o NoConsecutiveTricks) passed(e *evaluation) bool {
	return e.gameOver() && e.longestRun() < o.N
}

func (o NoConsecutiveTricks) failed(e *evaluation) bool {
	return e.longestRun() >= o.N
}

func (o NoConsecutiveTricks) describe(int) string {
	return fmt.Sprintf("I will never win %d tricks in a row", o.N)
}

// NoneOfFirstTricks: win none of the first N tricks.
type NoneOfFirstTricks struct {
	N int
}

func (o NoneOfFirstTricks) passed(e *evaluation) bool {
	if e.tricksPlayed() < o.N && !e.gameOver() {
		return false
	}
	for i := 0; i < o.N; i++ {
		if won, _ := e.trickWon(i); won {
			return false
		}
	}
	return true
}

func (o NoneOfFirstTricks) failed(e *evaluation) bool {
	for i := 0; i < o.N; i++ {
		if won, _ := e.trickWon(i); won {
			return true
		}
	}
	return false
}

func (o NoneOfFirstTricks) describe(int) string {
	return fmt.Sprintf("I will win none of the first %d tricks", o.N)
}

// NotOpenWith: never lead a trick with a card of the suits.
type NotOpenWith struct {
	Suits []protocol.Suit
}

func (o NotOpenWith) passed(e *evaluation) bool {
	for _, suit := range o.Suits {
		if e.ledWith(suit) {
			return false
		}
		if e.countPlayed(ofSuit(suit)) < suit.Size() && !e.gameOver() {
			return false
		}
	}
	return true
}

func (o NotOpenWith) failed(e *evaluation) bool {
	for _, suit := range o.Suits {
		if e.ledWith(suit) {
			return true
		}
	}
	return false
}

func (o NotOpenWith) describe(int) string {
	return "I will not open a trick with " + joinSuits(o.Suits, " or ")
}

// AllOfOneSuit: win every card of at least one color.
type AllOfOneSuit struct{}

func (o AllOfOneSuit) passed(e *evaluation) bool {
	for _, suit := range protocol.ColorSuits {
		if e.countWon(ofSuit(suit)) == suit.Size() {
			return true
		}
	}
	return false
}

func (o AllOfOneSuit) failed(e *evaluation) bool {
	for _, suit := range protocol.ColorSuits {
		if e.countLost(ofSuit(suit)) == 0 {
			return false
		}
	}
	return true
}

func (o AllOfOneSuit) describe(int) string {
	return "I will win all the cards in at least one of the 4 colors"
}

// OneOfEachSuit: win at least one card of every color.
type OneOfEachSuit struct{}

func (o OneOfEachSuit) passed(e *evaluation) bool {
	for _, suit := range protocol.ColorSuits {
		if e.countWon(ofSuit(suit)) == 0 {
			return false
		}
	}
	return true
}

func (o OneOfEachSuit) failed(e *evaluation) bool {
	for _, suit := range protocol.ColorSuits {
		if e.countLost(ofSuit(suit)) == suit.Size() {
			return true
		}
	}
	return false
}

func (o OneOfEachSuit) describe(int) string {
	return "I will win at least 1 card of each color"
}

// wonTrickWhere passes once a won trick holds no sub and every card matches.
func wonTrickWhere(e *evaluation, match func(card protocol.Card) bool) bool {
	for _, trick := range e.wonTricks() {
		if trick.ContainsTrump() {
			continue
		}
		all := true
		for _, played := range trick.Cards {
			if !match(played.Card) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// ParityTrick: win a trick of only odd or only even cards.
type ParityTrick struct {
	Odd bool
}

func (o ParityTrick) passed(e *evaluation) bool {
	return wonTrickWhere(e, func(card protocol.Card) bool {
		return (card.Rank()%2 == 1) == o.Odd
	})
}

func (o ParityTrick) failed(*evaluation) bool {
	return false
}

func (o ParityTrick) describe(int) string {
	if o.Odd {
		return "I will win a trick that has only odd-numbered cards"
	}
	return "I will win a trick that has only even-numbered cards"
}

// AllCardsThreshold: win a trick where every card is below (or above) Value.
type AllCardsThreshold struct {
	Value int
	Below bool
}

func (o AllCardsThreshold) passed(e *evaluation) bool {
	return wonTrickWhere(e, func(card protocol.Card) bool {
		if o.Below {
			return card.Rank() < o.Value
		}
		return card.Rank() > o.Value
	})
}

func (o AllCardsThreshold) failed(*evaluation) bool {
	return false
}

func (o AllCardsThreshold) describe(int) string {
	comparator := ">"
	if o.Below {
		comparator = "<"
	}
	return fmt.Sprintf("I will win a trick where all cards are %s %d (no subs)", comparator, o.Value)
}

// TrickTotal: win a trick without subs whose rank sum lies strictly between the bounds.
// Bounds depend on the player count, a zero bound is open.
type TrickTotal struct {
	Above [3]int
	Below [3]int
}

func (o TrickTotal) bounds(numPlayers int) (int, int) {
	index := numPlayers - minPlayers
	if index < 0 || index >= len(o.Above) {
		return 0, 0
	}
	return o.Above[index], o.Below[index]
}

func (o TrickTotal) passed(e *evaluation) bool {
	above, below := o.bounds(e.round.NumPlayers)
	for _, trick := range e.wonTricks() {
		if trick.ContainsTrump() {
			continue
		}
		sum := 0
		for _, played := range trick.Cards {
			sum += played.Card.Rank()
		}
		if (above == 0 || sum > above) && (below == 0 || sum < below) {
			return true
		}
	}
	return false
}

func (o TrickTotal) failed(*evaluation) bool {
	return false
}

func (o TrickTotal) describe(numPlayers int) string {
	above, below := o.bounds(numPlayers)
	switch {
	case above != 0 && below != 0:
		return fmt.Sprintf("I will win a trick where %d < total value < %d", above, below)
	case below != 0:
		return fmt.Sprintf("I will win a trick totalling less than %d (no subs)", below)
	default:
		return fmt.Sprintf("I will win a trick with total value greater than %d", above)
	}
}

// EqualInTrick: win a trick holding as many cards of one suit as of the other, at least one each.
type EqualInTrick struct {
	Suits [2]protocol.Suit
}

func (o EqualInTrick) passed(e *evaluation) bool {
	for _, trick := range e.wonTricks() {
		first := trick.CountSuit(o.Suits[0])
		if first > 0 && first == trick.CountSuit(o.Suits[1]) {
			return true
		}
	}
	return false
}

func (o EqualInTrick) failed(*evaluation) bool {
	return false
}

func (o EqualInTrick) describe(int) string {
	return "In 1 trick, I will win equal amounts of " + joinSuits(o.Suits[:], " and ")
}

type Relation string

const (
	RelationMore         Relation = "more"
	RelationFewer        Relation = "fewer"
	RelationAsMany       Relation = "as many"
	RelationMoreCombined Relation = "moreCombined"
)

// RelativeToCaptain: finish with more, fewer or as many tricks as the captain.
type RelativeToCaptain struct {
	Relation Relation
}

func (o RelativeToCaptain) counts(e *evaluation) (won, captain, left int) {
	return e.numWon(), e.tricksWon[e.round.Captain], e.tricksRemaining()
}

func (o RelativeToCaptain) passed(e *evaluation) bool {
	won, captain, left := o.counts(e)
	switch o.Relation {
	case RelationMore:
		return won > captain+left
	case RelationFewer:
		return won+left < captain
	case RelationAsMany:
		return left == 0 && won == captain
	}
	return false
}

func (o RelativeToCaptain) failed(e *evaluation) bool {
	won, captain, left := o.counts(e)
	switch o.Relation {
	case RelationMore:
		return won+left <= captain
	case RelationFewer:
		return won >= captain+left
	case RelationAsMany:
		diff := won - captain
		if diff < 0 {
			diff = -diff
		}
		return diff > left
	}
	return false
}

func (o RelativeToCaptain) describe(int) string {
	if o.Relation == RelationAsMany {
		return "I will win as many tricks as the captain"
	}
	return fmt.Sprintf("I will win %s tricks than the captain", o.Relation)
}

// RelativeToOthers: finish with more or fewer tricks than anyone else,
// or with more tricks than everyone else combined.
type RelativeToOthers struct {
	Relation Relation
}

func (o RelativeToOthers) passed(e *evaluation) bool {
	won, left := e.numWon(), e.tricksRemaining()
	others := e.others()
	switch o.Relation {
	case RelationMore:
		for _, seat := range others {
			if won <= e.tricksWon[seat]+left {
				return false
			}
		}
		return true
	case RelationFewer:
		for _, seat := range others {
			if won+left >= e.tricksWon[seat] {
				return false
			}
		}
		return true
	case RelationMoreCombined:
		total := 0
		for _, seat := range others {
			total += e.tricksWon[seat]
		}
		return won > total+left
	}
	return false
}

func (o RelativeToOthers) failed(e *evaluation) bool {
	won, left := e.numWon(), e.tricksRemaining()
	others := e.others()
	switch o.Relation {
	case RelationMore:
		for _, seat := range others {
			if won+left <= e.tricksWon[seat] {
				return true
			}
		}
		return false
	case RelationFewer:
		// every other seat needs at least won+1 tricks
		needed := 0
		for _, seat := range others {
			if missing := won + 1 - e.tricksWon[seat]; missing > 0 {
				needed += missing
			}
		}
		return needed > left
	case RelationMoreCombined:
		total := 0
		for _, seat := range others {
			total += e.tricksWon[seat]
		}
		return won+left <= total
	}
	return false
}

func (o RelativeToOthers) describe(int) string {
	if o.Relation == RelationMoreCombined {
		return "I will win more tricks than everyone else combined"
	}
	return fmt.Sprintf("I will win %s tricks than anyone else", o.Relation)
}

// SuitComparison: over the whole round, win more cards of the first suit than
// of the second, or as many of both.
type SuitComparison struct {
	Suits [2]protocol.Suit
	Equal bool
}

func (o SuitComparison) counts(e *evaluation) (won1, won2, open1, open2 int) {
	first, second := ofSuit(o.Suits[0]), ofSuit(o.Suits[1])
	return e.countWon(first), e.countWon(second),
		e.unresolved(first, o.Suits[0].Size()), e.unresolved(second, o.Suits[1].Size())
}

func (o SuitComparison) passed(e *evaluation) bool {
	won1, won2, open1, open2 := o.counts(e)
	if o.Equal {
		return open1 == 0 && open2 == 0 && won1 == won2
	}
	return won1 > won2+open2
}

func (o SuitComparison) failed(e *evaluation) bool {
	won1, won2, open1, open2 := o.counts(e)
	if o.Equal {
		return won1 > won2+open2 || won2 > won1+open1
	}
	return won1+open1 <= won2
}

func (o SuitComparison) describe(int) string {
	comparator := ">"
	if o.Equal {
		comparator = "="
	}
	return fmt.Sprintf("In total, I will win %s %s %s",
		suitNames[o.Suits[0]], comparator, suitNames[o.Suits[1]])
}

// FinalTrickCapture: win the card in the final trick.
type FinalTrickCapture struct {
	Card protocol.Card
}

func (o FinalTrickCapture) passed(e *evaluation) bool {
	last := e.lastTrickIndex()
	won, _ := e.trickWon(last)
	return won && e.tricks[last].Contains(o.Card)
}

func (o FinalTrickCapture) failed(e *evaluation) bool {
	last := e.lastTrickIndex()
	if e.trickLost(last) {
		return true
	}
	for i := 0; i < last && i < len(e.tricks); i++ {
		if e.tricks[i].Contains(o.Card) {
			return true
		}
	}
	return false
}

func (o FinalTrickCapture) describe(int) string {
	return fmt.Sprintf("In the final trick, I will win %s", o.Card)
}
