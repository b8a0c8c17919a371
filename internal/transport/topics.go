package transport

import (
	"strconv"
	"sync"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	waku "github.com/waku-org/go-waku/waku/v2/protocol"

	"github.com/six78/crew-cli/internal/config"
	"github.com/six78/crew-cli/pkg/protocol"
)

// topicCache remembers the content topic of every room the node has used.
type topicCache struct {
	mutex  sync.Mutex
	topics map[protocol.RoomID]string
}

func newTopicCache() *topicCache {
	return &topicCache{
		topics: make(map[protocol.RoomID]string),
	}
}

func (c *topicCache) Get(room *protocol.Room) (string, error) {
	roomID := room.ToRoomID()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if topic, ok := c.topics[roomID]; ok {
		return topic, nil
	}

	topic, err := roomContentTopic(room)
	if err != nil {
		return "", err
	}
	c.topics[roomID] = topic
	return topic, nil
}

// roomContentTopic is /crew/<version>/<first 4 bytes of keccak(room)>/json.
func roomContentTopic(room *protocol.Room) (string, error) {
	hash := crypto.Keccak256(room.Bytes())
	name := hexutil.Encode(hash[:4])[2:]
	version := strconv.Itoa(int(room.Version))

	topic, err := waku.NewContentTopic(config.ApplicationName, version, name, "json")
	if err != nil {
		return "", errors.Wrap(err, "failed to create content topic")
	}
	return topic.String(), nil
}
