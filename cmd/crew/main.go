package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/crew-cli/cmd/crew/demo"
	"github.com/six78/crew-cli/internal/api"
	"github.com/six78/crew-cli/internal/config"
	"github.com/six78/crew-cli/internal/render"
	"github.com/six78/crew-cli/internal/transport"
	"github.com/six78/crew-cli/internal/version"
	"github.com/six78/crew-cli/internal/view"
	"github.com/six78/crew-cli/pkg/game"
	"github.com/six78/crew-cli/pkg/protocol"
	"github.com/six78/crew-cli/pkg/storage"
)

const (
	commandPlay    = "play"
	commandDemo    = "demo"
	commandReplay  = "replay"
	commandServe   = "serve"
	commandVersion = "version"
)

func main() {
	config.ParseArguments()

	if config.Command() == commandVersion {
		fmt.Println(version.Version())
		return
	}

	config.SetupLogger()
	config.Logger.Info("starting",
		zap.String("version", version.Version()),
		zap.String("command", config.Command()))

	ctx, quit := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer quit()

	var code int
	switch config.Command() {
	case "", commandPlay:
		code = play(ctx, false)
	case commandDemo:
		code = play(ctx, true)
	case commandReplay:
		code = replay(ctx)
	case commandServe:
		code = serve(ctx)
	default:
		fmt.Fprintf(os.Stderr, "unknown command '%s', expected one of: %s\n",
			config.Command(),
			strings.Join([]string{commandPlay, commandDemo, commandReplay, commandServe, commandVersion}, ", "))
		code = 2
	}

	quit()
	_ = config.Logger.Sync()
	os.Exit(code)
}

func play(ctx context.Context, runDemo bool) int {
	waku := transport.NewNode(ctx, config.Logger, transport.SettingsFromConfig())
	defer waku.Stop()

	local := storage.NewLocalStorage("")
	matchLog, closeMatchLog, err := createMatchLog(ctx, local)
	if err != nil {
		config.Logger.Error("failed to open match log", zap.Error(err))
		return 1
	}
	defer closeMatchLog()

	options := []game.Option{
		game.WithContext(ctx),
		game.WithTransport(waku),
		game.WithClock(clockwork.NewRealClock()),
		game.WithLogger(config.Logger),
		game.WithPlayerName(config.PlayerName()),
		game.WithTarget(config.Target()),
		game.WithMatchLog(matchLog),
		game.WithOnlineMessagePeriod(config.OnlineMessagePeriod()),
		game.WithStateMessagePeriod(config.StateMessagePeriod()),
		game.WithPlayerOnlineTimeout(config.PlayerOnlineTimeout()),
		game.WithFeatures(game.FeatureFlags{
			EnableUndo:   config.Undo(),
			EnableHints:  config.Hints(),
			EnableEmotes: config.Emotes(),
		}),
	}
	if !config.Anonymous() {
		options = append(options, game.WithStorage(createStorage(ctx, local)))
	}

	g := game.NewGame(options)
	if g == nil {
		return 1
	}
	defer g.Stop()

	initialAction := strings.Join(config.CommandArgs(), " ")
	if !runDemo {
		return view.Run(g, waku, initialAction)
	}

	program := view.NewProgram(g, waku, initialAction)
	d := demo.New(ctx, g, program)
	go d.Routine()
	return view.RunProgram(program)
}

func replay(ctx context.Context) int {
	args := config.CommandArgs()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: crew replay <seeds>")
		return 2
	}

	seeds, err := protocol.ParseSeeds(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	matchLog, closeMatchLog, err := createMatchLog(ctx, storage.NewLocalStorage(""))
	if err != nil {
		config.Logger.Error("failed to open match log", zap.Error(err))
		return 1
	}
	defer closeMatchLog()

	summary, err := matchLog.LoadMatch(ctx, seeds)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	table, err := api.Replay(summary, config.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Println(render.Summary(summary))
	fmt.Println()
	fmt.Println(render.Table(table, ""))
	return 0
}

func serve(ctx context.Context) int {
	matchLog, closeMatchLog, err := createMatchLog(ctx, storage.NewLocalStorage(""))
	if err != nil {
		config.Logger.Error("failed to open match log", zap.Error(err))
		return 1
	}
	defer closeMatchLog()

	server := api.NewServer(matchLog, config.Logger)
	err = server.Run(ctx, config.ListenAddress())
	if err != nil {
		config.Logger.Error("match log service failed", zap.Error(err))
		return 1
	}
	return 0
}

// createStorage keeps rooms in Redis when configured. The player identity is always local.
func createStorage(ctx context.Context, local *storage.LocalStorage) storage.Service {
	if config.RedisAddress() == "" {
		return local
	}
	client := redis.NewClient(&redis.Options{Addr: config.RedisAddress()})
	return storage.WithRemoteRooms(local, storage.NewRedisStorage(ctx, client, config.Logger))
}

// createMatchLog opens MySQL when configured and the local folder otherwise.
func createMatchLog(ctx context.Context, local *storage.LocalStorage) (storage.MatchLog, func(), error) {
	if dsn := config.MySQLDSN(); dsn != "" {
		matchLog, err := storage.OpenSQLMatchLog(ctx, dsn, config.Logger)
		if err != nil {
			return nil, nil, err
		}
		return matchLog, func() { _ = matchLog.Close() }, nil
	}

	if err := local.Initialize(); err != nil {
		return nil, nil, errors.Wrap(err, "failed to initialize local match log")
	}
	return local, func() {}, nil
}
