package transport

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/six78/crew-cli/pkg/protocol"
)

func TestSealOpen(t *testing.T) {
	room, err := protocol.NewRoom()
	require.NoError(t, err)

	payload := make([]byte, 100)
	gofakeit.Slice(&payload)

	topic, err := roomContentTopic(room)
	require.NoError(t, err)

	message, err := seal(room, topic, payload)
	require.NoError(t, err)
	require.NotEqual(t, payload, message.Payload)
	require.Equal(t, topic, message.ContentTopic)

	opened, err := open(room, message)
	require.NoError(t, err)
	require.Equal(t, payload, opened)
}

func TestOpenWithAnotherRoom(t *testing.T) {
	room, err := protocol.NewRoom()
	require.NoError(t, err)
	other, err := protocol.NewRoom()
	require.NoError(t, err)

	message, err := seal(room, "/crew/1/00000000/json", []byte("hello"))
	require.NoError(t, err)

	_, err = open(other, message)
	require.Error(t, err)
}

func TestTopicCache(t *testing.T) {
	cache := newTopicCache()

	room1, err := protocol.NewRoom()
	require.NoError(t, err)
	room2, err := protocol.NewRoom()
	require.NoError(t, err)

	topic1, err := cache.Get(room1)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(topic1, "/crew/1/"))
	require.True(t, strings.HasSuffix(topic1, "/json"))

	again, err := cache.Get(room1)
	require.NoError(t, err)
	require.Equal(t, topic1, again)
	require.Len(t, cache.topics, 1)

	topic2, err := cache.Get(room2)
	require.NoError(t, err)
	require.NotEqual(t, topic1, topic2)
	require.Len(t, cache.topics, 2)

	// Same room parsed from its id maps to the same topic
	parsed, err := protocol.ParseRoomID(room1.ToRoomID().String())
	require.NoError(t, err)
	topic, err := cache.Get(parsed)
	require.NoError(t, err)
	require.Equal(t, topic1, topic)
}
