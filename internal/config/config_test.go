package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func parseArgs(t *testing.T, args ...string) error {
	t.Helper()
	fs := flag.NewFlagSet("crew", flag.ContinueOnError)
	return parse(fs, args)
}

func TestDefaults(t *testing.T) {
	require.NoError(t, parseArgs(t))

	require.Empty(t, PlayerName())
	require.False(t, Debug())
	require.False(t, Anonymous())
	require.Zero(t, Target())
	require.True(t, Undo())
	require.True(t, Hints())
	require.True(t, Emotes())
	require.Equal(t, "shards.test", Fleet())
	require.Equal(t, 5*time.Second, OnlineMessagePeriod())
	require.Equal(t, 30*time.Second, StateMessagePeriod())
	require.Equal(t, 20*time.Second, PlayerOnlineTimeout())
	require.Equal(t, ":8000", ListenAddress())
	require.Empty(t, Command())
	require.Empty(t, CommandArgs())
}

func TestCommand(t *testing.T) {
	err := parseArgs(t,
		"-name", "alice",
		"-target", "20",
		"-rules.hints=false",
		"-waku.staticnode", "/dns4/a/tcp/30303",
		"-waku.staticnode", "/dns4/b/tcp/30303",
		"replay", "1-2-3-4")
	require.NoError(t, err)

	require.Equal(t, "alice", PlayerName())
	require.Equal(t, 20, Target())
	require.False(t, Hints())
	require.Equal(t, []string{"/dns4/a/tcp/30303", "/dns4/b/tcp/30303"}, WakuStaticNodes())
	require.Equal(t, "replay", Command())
	require.Equal(t, []string{"1-2-3-4"}, CommandArgs())
}

func TestValidation(t *testing.T) {
	require.Error(t, parseArgs(t, "-target", "-1"))
	require.Error(t, parseArgs(t, "-target", "100"))
	require.Error(t, parseArgs(t, "-session.online", "0s"))
	require.Error(t, parseArgs(t, "-session.online", "10s", "-session.timeout", "10s"))
	require.NoError(t, parseArgs(t, "-session.online", "10s", "-session.timeout", "11s"))
}

func TestLogFileName(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)
	require.Equal(t, "crew-play-2024-03-01T10-20-30Z.log", logFileName("", now))
	require.Equal(t, "crew-serve-2024-03-01T10-20-30Z.log", logFileName("serve", now))
}
