package transport

import (
	"github.com/pkg/errors"
	"github.com/waku-org/go-waku/waku/v2/protocol"
	"github.com/waku-org/go-waku/waku/v2/protocol/relay"

	"github.com/six78/crew-cli/internal/config"
)

type FleetName string

const (
	ShardsStaging FleetName = "shards.staging"
	ShardsTest    FleetName = "shards.test"
	WakuSandbox   FleetName = "waku.sandbox"
	WakuTest      FleetName = "waku.test"
)

// Tables share a single static shard on sharded fleets.
const (
	DefaultClusterID = 16
	DefaultShardID   = 64
)

type fleet struct {
	enrTree string
	sharded bool
}

var fleets = map[FleetName]fleet{
	ShardsStaging: {sharded: true},
	ShardsTest: {
		enrTree: "enrtree://AMOJVZX4V6EXP7NTJPMAYJYST2QP6AJXYW76IU6VGJS7UVSNDYZG4@boot.test.shards.nodes.status.im",
		sharded: true,
	},
	WakuSandbox: {
		enrTree: "enrtree://AIRVQ5DDA4FFWLRBCHJWUWOO6X6S4ZTZ5B667LQ6AJU6PEYDLRD5O@sandbox.waku.nodes.status.im",
	},
	WakuTest: {},
}

// FleetENRTree returns the DNS discovery tree of the fleet, if it publishes one.
func FleetENRTree(name FleetName) (string, bool) {
	f, ok := fleets[name]
	return f.enrTree, ok && f.enrTree != ""
}

func (f FleetName) Known() bool {
	_, ok := fleets[f]
	return ok
}

func (f FleetName) IsSharded() bool {
	return fleets[f].sharded
}

func (f FleetName) PubsubTopic() string {
	if f.IsSharded() {
		return protocol.NewStaticShardingPubsubTopic(DefaultClusterID, DefaultShardID).String()
	}
	return relay.DefaultWakuTopic
}

// Settings selects the fleet and the node protocols.
type Settings struct {
	Fleet        FleetName
	Nameserver   string
	StaticNodes  []string
	LightMode    bool
	DiscV5       bool
	DNSDiscovery bool
}

func SettingsFromConfig() Settings {
	return Settings{
		Fleet:        FleetName(config.Fleet()),
		Nameserver:   config.Nameserver(),
		StaticNodes:  config.WakuStaticNodes(),
		LightMode:    config.WakuLightMode(),
		DiscV5:       config.WakuDiscV5(),
		DNSDiscovery: config.WakuDnsDiscovery(),
	}
}

// Validate checks the node has a way to find peers.
func (s Settings) Validate() error {
	if !s.Fleet.Known() {
		return errors.Errorf("unknown fleet %s", s.Fleet)
	}
	if s.DNSDiscovery {
		if _, ok := FleetENRTree(s.Fleet); !ok {
			return errors.Errorf("fleet %s has no discovery tree, disable DNS discovery", s.Fleet)
		}
		return nil
	}
	if len(s.StaticNodes) == 0 && !s.DiscV5 {
		return errors.New("no static nodes and no discovery enabled")
	}
	return nil
}
