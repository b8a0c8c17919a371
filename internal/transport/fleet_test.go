package transport

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

func TestFleets(t *testing.T) {
	for _, name := range []FleetName{WakuSandbox, ShardsTest} {
		enr, ok := FleetENRTree(name)
		require.True(t, ok, name)
		require.Equal(t, fleets[name].enrTree, enr)
	}

	for _, name := range []FleetName{WakuTest, ShardsStaging, FleetName(gofakeit.LetterN(5))} {
		_, ok := FleetENRTree(name)
		require.False(t, ok, name)
	}
}

func TestFleetSharded(t *testing.T) {
	require.True(t, ShardsTest.IsSharded())
	require.True(t, ShardsStaging.IsSharded())
	require.False(t, WakuSandbox.IsSharded())
	require.False(t, FleetName(gofakeit.LetterN(5)).IsSharded())
}

func TestFleetPubsubTopic(t *testing.T) {
	require.Equal(t, "/waku/2/default-waku/proto", WakuSandbox.PubsubTopic())
	require.Equal(t, "/waku/2/rs/16/64", ShardsTest.PubsubTopic())
}

func TestSettingsValidate(t *testing.T) {
	testCases := []struct {
		name     string
		settings Settings
		valid    bool
	}{
		{"dns discovery", Settings{Fleet: ShardsTest, DNSDiscovery: true}, true},
		{"unknown fleet", Settings{Fleet: "nowhere", DNSDiscovery: true}, false},
		{"no discovery tree", Settings{Fleet: WakuTest, DNSDiscovery: true}, false},
		{"static nodes", Settings{Fleet: WakuTest, StaticNodes: []string{"/dns4/node/tcp/30303"}}, true},
		{"discv5 only", Settings{Fleet: ShardsStaging, DiscV5: true}, true},
		{"no peers source", Settings{Fleet: ShardsStaging}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.settings.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
