package missions

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/six78/crew-cli/pkg/protocol"
	"github.com/six78/crew-cli/pkg/shuffle"
)

func TestCatalog(t *testing.T) {
	templates := Catalog()
	require.Len(t, templates, 96)

	// Catalog order is part of recorded deals
	require.Equal(t, "93", templates[0].ID)
	require.Equal(t, "95", templates[23].ID)
	require.Equal(t, "94", templates[63].ID)
	require.Equal(t, "0", templates[94].ID)
	require.Equal(t, "1", templates[95].ID)

	ids := map[string]bool{}
	for _, template := range templates {
		require.NotNil(t, template.Objective, template.ID)
		require.False(t, ids[template.ID], "duplicate id %s", template.ID)
		ids[template.ID] = true

		for numPlayers := 3; numPlayers <= 5; numPlayers++ {
			require.Positive(t, template.Points(numPlayers), template.ID)
			require.NotEmpty(t, template.Describe(numPlayers), template.ID)
		}
	}
	for i := 0; i < 96; i++ {
		require.True(t, ids[strconv.Itoa(i)], "missing id %d", i)
	}
}

func TestCatalogCopy(t *testing.T) {
	templates := Catalog()
	templates[0] = Template{ID: "x"}
	require.Equal(t, "93", Catalog()[0].ID)
}

func TestLookup(t *testing.T) {
	template, ok := Lookup("48")
	require.True(t, ok)
	require.Equal(t, 2, template.Points(3))
	require.Equal(t, 5, template.Points(4))
	require.Equal(t, 6, template.Points(5))
	require.Equal(t, ParityTrick{Odd: false}, template.Objective)

	_, ok = Lookup("96")
	require.False(t, ok)

	for _, id := range []string{"8", "9"} {
		template, ok = Lookup(id)
		require.True(t, ok)
		require.True(t, template.HasSecretX(), id)
	}

	public, _ := Lookup("8")
	require.True(t, public.XIsPublic())
	private, _ := Lookup("9")
	require.False(t, private.XIsPublic())

	plain, _ := Lookup("11")
	require.False(t, plain.HasSecretX())
	require.False(t, plain.XIsPublic())
}

func TestDescribe(t *testing.T) {
	testCases := []struct {
		id         string
		numPlayers int
		expected   string
	}{
		{"80", 3, "I will win s1 and not s2 s3 s4"},
		{"57", 3, "I will win a 8 with a 4"},
		{"63", 4, "I will win a trick using a 3"},
		{"55", 4, "I will win a trick totalling less than 12 (no subs)"},
		{"56", 5, "I will win a trick where 21 < total value < 24"},
		{"43", 3, "In the final trick, I will win G2"},
		{"11", 3, "I will win exactly 2 tricks"},
		{"12", 3, "I will win exactly 1 trick"},
		{"14", 3, "I will win only the first trick"},
		{"0", 3, "I will win exactly 2 tricks and they will be in a row"},
		{"9", 3, "I will win exactly X tricks (secret)"},
		{"44", 3, "I will win more tricks than everyone else combined"},
		{"49", 3, "I will win as many tricks as the captain"},
	}

	for _, tc := range testCases {
		template, ok := Lookup(tc.id)
		require.True(t, ok)
		require.Equal(t, tc.expected, template.Describe(tc.numPlayers), tc.id)
	}

	template, _ := Lookup("8")
	mission := NewMission(template)
	x := 3
	mission.X = &x
	require.Equal(t, "I will win exactly 3 tricks (public)", mission.Describe(3))
}

func TestAllocate(t *testing.T) {
	g := shuffle.New(1, 2, 3, 4)
	_ = shuffle.Shuffle(g, protocol.NewDeck())
	templates := shuffle.Shuffle(g, Catalog())

	expectedOrder := []string{"53", "54", "75", "94", "64", "76", "18", "35", "4", "13"}
	for i, id := range expectedOrder {
		require.Equal(t, id, templates[i].ID)
	}

	testCases := []struct {
		numPlayers int
		expected   []string
	}{
		{3, []string{"53", "54", "75", "94", "76"}},
		{4, []string{"53", "54", "75", "94", "4"}},
		{5, []string{"53", "54", "75", "94"}},
	}

	for _, tc := range testCases {
		chosen := Allocate(templates, tc.numPlayers, protocol.DefaultTarget)
		ids := make([]string, 0, len(chosen))
		total := 0
		for _, template := range chosen {
			ids = append(ids, template.ID)
			total += template.Points(tc.numPlayers)
		}
		require.Equal(t, tc.expected, ids, "players %d", tc.numPlayers)
		require.Equal(t, protocol.DefaultTarget, total)
	}
}

func TestAllocateExhausted(t *testing.T) {
	templates := Catalog()[:3]
	chosen := Allocate(templates, 3, 100)
	require.Len(t, chosen, 3)

	require.Empty(t, Allocate(templates, 3, 0))
}
