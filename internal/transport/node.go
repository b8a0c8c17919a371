package transport

import (
	"context"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/p2p/enode"
	"github.com/ethereum/go-ethereum/p2p/enr"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/multiformats/go-multiaddr"
	"github.com/pkg/errors"
	"github.com/waku-org/go-waku/waku/v2/dnsdisc"
	"github.com/waku-org/go-waku/waku/v2/node"
	wakuenr "github.com/waku-org/go-waku/waku/v2/protocol/enr"
	"go.uber.org/zap"
)

const dialTimeout = 10 * time.Second

// Node is a waku node relaying room messages.
type Node struct {
	ctx      context.Context
	logger   *zap.Logger
	settings Settings

	waku        *node.WakuNode
	pubsubTopic string
	topics      *topicCache
	connections chan node.PeerConnection

	statusMutex sync.Mutex
	status      ConnectionStatus
	subscribers []ConnectionStatusSubscription
	peers       map[peer.ID]struct{}
}

func NewNode(ctx context.Context, logger *zap.Logger, settings Settings) *Node {
	return &Node{
		ctx:         ctx,
		logger:      logger.Named("waku"),
		settings:    settings,
		pubsubTopic: settings.Fleet.PubsubTopic(),
		topics:      newTopicCache(),
		peers:       make(map[peer.ID]struct{}),
	}
}

func (n *Node) Initialize() error {
	if err := n.settings.Validate(); err != nil {
		return errors.Wrap(err, "invalid relay settings")
	}

	hostAddr, err := net.ResolveTCPAddr("tcp", "0.0.0.0:0")
	if err != nil {
		return errors.Wrap(err, "failed to resolve TCP address")
	}

	var discovered []dnsdisc.DiscoveredNode
	if n.settings.DNSDiscovery {
		discovered, err = n.discoverNodes()
		if err != nil {
			return errors.Wrap(err, "failed to discover nodes")
		}
	}

	n.connections = make(chan node.PeerConnection)
	wakuNode, err := node.New(n.nodeOptions(hostAddr, discovered)...)
	if err != nil {
		return errors.Wrap(err, "failed to create waku node")
	}

	n.waku = wakuNode
	return nil
}

func (n *Node) nodeOptions(hostAddr *net.TCPAddr, discovered []dnsdisc.DiscoveredNode) []node.WakuNodeOption {
	options := []node.WakuNodeOption{
		node.WithLogger(n.logger),
		node.WithLogLevel(zap.DebugLevel),
		node.WithHostAddress(hostAddr),
		node.WithConnectionNotification(n.connections),
	}

	if n.settings.DiscV5 {
		options = append(options,
			node.WithDiscoveryV5(0, bootNodes(discovered), true),
			node.WithPeerExchange(),
		)
	}

	if n.settings.LightMode {
		options = append(options, node.WithLightPush(), node.WithWakuFilterLightNode())
	} else {
		options = append(options, node.WithWakuRelay())
	}

	if n.settings.Fleet.IsSharded() {
		options = append(options, node.WithClusterID(DefaultClusterID))
	}

	return append(options, node.DefaultWakuNodeOptions...)
}

func (n *Node) Start() error {
	if n.waku == nil {
		return errors.New("not initialized")
	}

	go n.watchPeers()

	err := n.waku.Start(n.ctx)
	if err != nil {
		return errors.Wrap(err, "failed to start waku node")
	}
	n.logger.Info("waku started", zap.String("peerID", n.waku.ID()))

	if !n.settings.LightMode {
		err = n.joinPubsubTopic()
		if err != nil {
			return err
		}
	}

	if n.settings.DiscV5 {
		err = n.waku.DiscV5().Start(n.ctx)
		if err != nil {
			return errors.Wrap(err, "failed to start discoveryV5")
		}
	}

	for _, address := range n.settings.StaticNodes {
		err = n.dialStaticNode(address)
		if err != nil {
			return err
		}
	}

	return nil
}

func (n *Node) Stop() {
	if n.waku != nil {
		n.waku.Stop()
	}
}

func (n *Node) discoverNodes() ([]dnsdisc.DiscoveredNode, error) {
	enrTree, ok := FleetENRTree(n.settings.Fleet)
	if !ok {
		return nil, errors.Errorf("fleet %s has no discovery tree", n.settings.Fleet)
	}

	var options []dnsdisc.DNSDiscoveryOption
	if n.settings.Nameserver != "" {
		options = append(options, dnsdisc.WithNameserver(n.settings.Nameserver))
	}

	discovered, err := dnsdisc.RetrieveNodes(n.ctx, enrTree, options...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to retrieve nodes from enr tree")
	}

	for _, d := range discovered {
		field := new(wakuenr.WakuEnrBitfield)
		err = d.ENR.Record().Load(enr.WithEntry(wakuenr.WakuENRField, &field))
		if err != nil {
			return nil, errors.Wrap(err, "failed to load waku enr field")
		}
		n.logger.Debug("discovered node",
			zap.String("peerID", d.PeerID.String()),
			zap.String("protocols", enrProtocols(*field)))
	}

	return discovered, nil
}

func bootNodes(discovered []dnsdisc.DiscoveredNode) []*enode.Node {
	var result []*enode.Node
	for _, d := range discovered {
		if d.ENR != nil {
			result = append(result, d.ENR)
		}
	}
	return result
}

// enrProtocols lists the protocols flagged in a waku ENR bitfield, highest bit first.
func enrProtocols(field wakuenr.WakuEnrBitfield) string {
	names := []string{"relay", "store", "filter", "lightpush"}
	var out []string
	for bit := len(names) - 1; bit >= 0; bit-- {
		if field&(1<<bit) != 0 {
			out = append(out, names[bit])
		}
	}
	return strings.Join(out, ",")
}

func (n *Node) dialStaticNode(address string) error {
	n.logger.Info("connecting to static node", zap.String("address", address))

	addr, err := multiaddr.NewMultiaddr(address)
	if err != nil {
		return errors.Wrap(err, "failed to parse multiaddr")
	}

	ctx, cancel := context.WithTimeout(n.ctx, dialTimeout)
	defer cancel()

	err = n.waku.DialPeerWithMultiAddress(ctx, addr)
	return errors.Wrap(err, "failed to dial static node")
}
