package missions

import (
	"github.com/six78/crew-cli/pkg/protocol"
)

const (
	blue   = protocol.Blue
	pink   = protocol.Pink
	yellow = protocol.Yellow
	green  = protocol.Green
	sub    = protocol.Sub
)

func template(id string, points [3]int, objective Objective) Template {
	return Template{
		ID:        id,
		Objective: objective,
		points:    points,
	}
}

func cards(values ...protocol.Card) []protocol.Card {
	return values
}

func suits(values ...protocol.Suit) []protocol.Suit {
	return values
}

// The order of the catalog is part of the deal: the shuffle permutes it as is.
var catalog = []Template{
	template("93", [3]int{1, 1, 1}, WinCards{Cards: cards("G6")}),
	template("92", [3]int{1, 1, 1}, WinCards{Cards: cards("P3")}),
	template("91", [3]int{1, 1, 1}, WinCards{Cards: cards("Y1")}),
	template("90", [3]int{1, 1, 1}, WinCards{Cards: cards("B4")}),
	template("89", [3]int{3, 4, 5}, WinCards{Cards: cards("B3", "P3", "G3", "Y3")}),
	template("88", [3]int{3, 4, 5}, WinCards{Cards: cards("B9", "P9", "G9", "Y9")}),
	template("87", [3]int{2, 2, 2}, WinCards{Cards: cards("P1", "G7")}),
	template("86", [3]int{2, 3, 3}, WinCards{Cards: cards("Y9", "B7")}),
	template("85", [3]int{2, 2, 3}, WinCards{Cards: cards("P8", "B5")}),
	template("84", [3]int{2, 2, 3}, WinCards{Cards: cards("G5", "B8")}),
	template("83", [3]int{2, 2, 3}, WinCards{Cards: cards("B6", "Y7")}),
	template("82", [3]int{2, 2, 3}, WinCards{Cards: cards("P5", "Y6")}),
	template("81", [3]int{2, 3, 3}, WinCards{Cards: cards("P9", "Y8")}),
	template("80", [3]int{3, 3, 3}, WinCards{Cards: cards("s1"), Forbidden: cards("s2", "s3", "s4")}),
	template("79", [3]int{3, 3, 3}, WinCards{Cards: cards("s2"), Forbidden: cards("s1", "s3", "s4")}),
	template("78", [3]int{1, 1, 1}, WinCards{Cards: cards("s3")}),
	template("77", [3]int{3, 4, 4}, WinCards{Cards: cards("G3", "Y4", "Y5")}),
	template("76", [3]int{2, 3, 3}, WinCards{Cards: cards("B1", "B2", "B3")}),

	template("75", [3]int{1, 1, 1}, AvoidSuits{Suits: suits(sub)}),
	template("74", [3]int{3, 3, 3}, AvoidSuits{Suits: suits(yellow, green)}),
	template("73", [3]int{3, 3, 3}, AvoidSuits{Suits: suits(pink, blue)}),
	template("72", [3]int{2, 2, 2}, AvoidSuits{Suits: suits(pink)}),
	template("71", [3]int{2, 2, 2}, AvoidSuits{Suits: suits(yellow)}),
	template("95", [3]int{2, 2, 2}, AvoidSuits{Suits: suits(green)}),

	template("70", [3]int{1, 1, 1}, AvoidNumbers{Ranks: []int{9}}),
	template("69", [3]int{1, 2, 2}, AvoidNumbers{Ranks: []int{5}}),
	template("68", [3]int{2, 2, 2}, AvoidNumbers{Ranks: []int{1}}),
	template("67", [3]int{3, 3, 3}, AvoidNumbers{Ranks: []int{1, 2, 3}}),
	template("66", [3]int{3, 3, 2}, AvoidNumbers{Ranks: []int{8, 9}}),

	template("65", [3]int{3, 3, 3}, WinWithTrump{Card: "G9"}),
	template("64", [3]int{3, 3, 3}, WinWithTrump{Card: "P7"}),

	template("63", [3]int{3, 4, 5}, WinWithNumber{With: 3}),
	template("62", [3]int{2, 3, 3}, WinWithNumber{With: 6}),
	template("61", [3]int{2, 3, 4}, WinWithNumber{With: 5}),
	template("60", [3]int{3, 4, 5}, WinWithNumber{With: 2}),
	template("59", [3]int{2, 3, 4}, WinWithNumber{With: 6, Capturing: 6}),
	template("58", [3]int{1, 2, 2}, WinWithNumber{With: 7, Capturing: 5}),
	template("57", [3]int{3, 4, 5}, WinWithNumber{With: 4, Capturing: 8}),

	template("56", [3]int{3, 3, 4}, TrickTotal{Above: [3]int{21, 21, 21}, Below: [3]int{24, 24, 24}}),
	template("55", [3]int{3, 3, 4}, TrickTotal{Below: [3]int{8, 12, 16}}),
	template("54", [3]int{3, 3, 4}, TrickTotal{Above: [3]int{23, 28, 31}}),
	template("53", [3]int{2, 3, 3}, AllCardsThreshold{Value: 7, Below: true}),
	template("52", [3]int{2, 3, 4}, AllCardsThreshold{Value: 5}),

	template("51", [3]int{2, 2, 3}, RelativeToCaptain{Relation: RelationMore}),
	template("50", [3]int{2, 2, 2}, RelativeToCaptain{Relation: RelationFewer}),
	template("49", [3]int{4, 3, 3}, RelativeToCaptain{Relation: RelationAsMany}),

	template("48", [3]int{2, 5, 6}, ParityTrick{Odd: false}),
	template("47", [3]int{2, 4, 5}, ParityTrick{Odd: true}),

	template("46", [3]int{2, 3, 3}, RelativeToOthers{Relation: RelationMore}),
	template("45", [3]int{2, 2, 3}, RelativeToOthers{Relation: RelationFewer}),
	template("44", [3]int{3, 4, 5}, RelativeToOthers{Relation: RelationMoreCombined}),

	template("43", [3]int{3, 4, 5}, FinalTrickCapture{Card: "G2"}),

	template("42", [3]int{3, 4, 5}, NumberCount{Rank: 9, Count: 3}),
	template("41", [3]int{3, 4, 5}, NumberCount{Rank: 5, Count: 3}),
	template("40", [3]int{3, 4, 4}, NumberCount{Rank: 6, Count: 3, Exact: true}),
	template("39", [3]int{3, 4, 4}, SuitCounts{Counts: []SuitCount{{Suit: green, Count: 2, Exact: true}}}),
	template("38", [3]int{2, 2, 2}, NumberCount{Rank: 7, Count: 2}),
	template("37", [3]int{2, 3, 3}, NumberCount{Rank: 9, Count: 2, Exact: true}),

	template("36", [3]int{3, 4, 4}, SuitCounts{Counts: []SuitCount{{Suit: sub, Count: 3, Exact: true}}}),
	template("35", [3]int{3, 3, 4}, SuitCounts{Counts: []SuitCount{{Suit: sub, Count: 2, Exact: true}}}),
	template("34", [3]int{3, 3, 3}, SuitCounts{Counts: []SuitCount{{Suit: sub, Count: 1, Exact: true}}}),
	template("33", [3]int{3, 3, 4}, SuitCounts{Counts: []SuitCount{{Suit: pink, Count: 1, Exact: true}}}),
	template("32", [3]int{3, 4, 4}, SuitCounts{Counts: []SuitCount{{Suit: blue, Count: 2, Exact: true}}}),
	template("94", [3]int{4, 4, 4}, SuitCounts{Counts: []SuitCount{
		{Suit: pink, Count: 1, Exact: true},
		{Suit: green, Count: 1, Exact: true},
	}}),
	template("31", [3]int{2, 3, 3}, SuitCounts{Counts: []SuitCount{{Suit: pink, Count: 5}}}),
	template("30", [3]int{3, 3, 3}, SuitCounts{Counts: []SuitCount{{Suit: yellow, Count: 7}}}),

	template("29", [3]int{3, 4, 5}, AllOfOneSuit{}),
	template("28", [3]int{2, 3, 4}, OneOfEachSuit{}),

	template("27", [3]int{2, 3, 3}, EqualInTrick{Suits: [2]protocol.Suit{pink, blue}}),
	template("26", [3]int{2, 3, 3}, EqualInTrick{Suits: [2]protocol.Suit{green, yellow}}),

	template("25", [3]int{4, 3, 3}, NotOpenWith{Suits: suits(pink, yellow, blue)}),
	template("24", [3]int{2, 1, 1}, NotOpenWith{Suits: suits(pink, green)}),

	template("23", [3]int{4, 4, 4}, SuitComparison{Suits: [2]protocol.Suit{pink, yellow}, Equal: true}),
	template("22", [3]int{1, 1, 1}, SuitComparison{Suits: [2]protocol.Suit{yellow, blue}}),
	template("21", [3]int{1, 1, 1}, SuitComparison{Suits: [2]protocol.Suit{pink, green}}),

	template("20", [3]int{1, 1, 1}, FirstTricks{N: 1}),
	template("19", [3]int{1, 1, 2}, FirstTricks{N: 2}),
	template("18", [3]int{2, 3, 4}, FirstTricks{N: 3}),
	template("17", [3]int{2, 3, 3}, LastTricks{N: 1}),
	template("16", [3]int{4, 4, 4}, OnlyLastTricks{N: 1}),
	template("15", [3]int{3, 4, 4}, FirstAndLastTricks{}),
	template("14", [3]int{4, 3, 3}, OnlyFirstTricks{N: 1}),

	template("13", [3]int{4, 3, 3}, TrickCount{N: 0}),
	template("12", [3]int{3, 2, 2}, TrickCount{N: 1}),
	template("11", [3]int{2, 2, 2}, TrickCount{N: 2}),
	template("10", [3]int{2, 3, 5}, TrickCount{N: 4}),

	template("9", [3]int{4, 3, 3}, SecretTrickCount{Public: false}),
	template("8", [3]int{3, 2, 2}, SecretTrickCount{Public: true}),

	template("7", [3]int{1, 2, 2}, NoneOfFirstTricks{N: 3}),
	template("6", [3]int{1, 2, 3}, NoneOfFirstTricks{N: 4}),
	template("5", [3]int{2, 3, 3}, NoneOfFirstTricks{N: 5}),

	template("4", [3]int{1, 1, 1}, ConsecutiveTricks{N: 2}),
	template("3", [3]int{2, 3, 4}, ConsecutiveTricks{N: 3}),
	template("2", [3]int{3, 2, 2}, NoConsecutiveTricks{N: 2}),

	template("0", [3]int{3, 3, 3}, ExactConsecutiveTricks{N: 2}),
	template("1", [3]int{3, 3, 4}, ExactConsecutiveTricks{N: 3}),
}

var catalogIndex = func() map[string]int {
	index := make(map[string]int, len(catalog))
	for i, t := range catalog {
		index[t.ID] = i
	}
	return index
}()

// Catalog returns a copy of every template in catalog order.
func Catalog() []Template {
	result := make([]Template, len(catalog))
	copy(result, catalog)
	return result
}

func Lookup(id string) (Template, bool) {
	i, ok := catalogIndex[id]
	if !ok {
		return Template{}, false
	}
	return catalog[i], true
}

// Allocate walks the templates in order and keeps each one whose cost still
// fits the target. It stops once the target is reached.
func Allocate(templates []Template, numPlayers int, target int) []Template {
	chosen := make([]Template, 0, len(templates))
	total := 0
	for _, t := range templates {
		if total >= target {
			break
		}
		points := t.Points(numPlayers)
		if total+points <= target {
			chosen = append(chosen, t)
			total += points
		}
	}
	return chosen
}
