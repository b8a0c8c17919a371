package demo

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/crew-cli/internal/config"
	"github.com/six78/crew-cli/internal/transport"
	"github.com/six78/crew-cli/internal/view/commands"
	"github.com/six78/crew-cli/pkg/engine"
	"github.com/six78/crew-cli/pkg/game"
	"github.com/six78/crew-cli/pkg/missions"
	"github.com/six78/crew-cli/pkg/protocol"
)

const (
	waitTimeout = 30 * time.Second
	dealTimeout = 10 * time.Minute
)

var botNames = []string{"Alice", "Bob"}

// Demo drives the host's program and plays the other seats with bots.
type Demo struct {
	ctx     context.Context
	host    *game.Game
	watcher *watcher
	program *tea.Program
	logger  *zap.Logger

	bots []*game.Game
}

func New(ctx context.Context, host *game.Game, program *tea.Program) *Demo {
	return &Demo{
		ctx:     ctx,
		host:    host,
		watcher: watch(ctx, host.Subscribe()),
		program: program,
		logger:  config.Logger.Named("demo"),
	}
}

func (d *Demo) Stop() {
	d.logger.Info("stopping")
	for _, bot := range d.bots {
		bot.Stop()
	}
}

func (d *Demo) Routine() {
	defer d.Stop()

	d.logger.Info("started")

	err := d.waitFor(waitTimeout, func(*protocol.State, *engine.GameState) bool {
		return d.host.Initialized()
	})
	if err != nil {
		d.logger.Error("host not initialized", zap.Error(err))
		return
	}
	// the program switches to playing once the relay has peers
	time.Sleep(2 * time.Second)

	d.sendShortcut(commands.DefaultKeyMap.NewRoom)
	err = d.waitFor(waitTimeout, func(state *protocol.State, _ *engine.GameState) bool {
		return state != nil
	})
	if err != nil {
		d.logger.Error("room not created", zap.Error(err))
		return
	}
	d.logger.Info("room created", zap.String("roomID", d.host.RoomID().String()))

	for _, name := range botNames {
		bot, err := d.createBot(name)
		if err != nil {
			d.logger.Error("failed to create bot", zap.String("name", name), zap.Error(err))
			return
		}
		d.bots = append(d.bots, bot)
		go d.botRoutine(bot)
	}

	err = d.waitFor(waitTimeout, func(state *protocol.State, _ *engine.GameState) bool {
		return state != nil && state.Server.SeatedCount() == len(botNames)+1
	})
	if err != nil {
		d.logger.Error("bots did not take seats", zap.Error(err))
		return
	}
	d.logger.Info("players seated")

	time.Sleep(time.Second)
	d.sendShortcut(commands.DefaultKeyMap.Start)

	err = d.hostRoutine()
	if err != nil {
		d.logger.Error("deal interrupted", zap.Error(err))
		return
	}

	time.Sleep(3 * time.Second)
	d.logger.Info("finished")
}

// hostRoutine takes the host's turns through the program input.
func (d *Demo) hostRoutine() error {
	hostID := d.host.Player().ID
	deadline := time.After(dealTimeout)
	acted := -1

	for {
		var table *engine.GameState
		var moves int
		err := d.waitFor(waitTimeout, func(state *protocol.State, t *engine.GameState) bool {
			if t == nil || state == nil || t.Phase() == engine.PhaseAwaitingStart {
				return false
			}
			table, moves = t, len(state.Moves)
			return t.Completed || (moves > acted && t.TurnPlayer().ID == hostID)
		})
		if err != nil {
			return err
		}
		if table.Completed {
			d.logger.Info("deal completed", zap.Bool("succeeded", table.Succeeded))
			return nil
		}

		select {
		case <-deadline:
			return errors.New("deal took too long")
		case <-d.ctx.Done():
			return d.ctx.Err()
		default:
		}

		humanDelay()
		acted = moves
		switch table.Phase() {
		case engine.PhaseMissionDraft:
			d.sendAction("draft " + draftArgument(table.Pool[0]))
		case engine.PhaseTrickPlay:
			d.sendKey(tea.KeyEnter)
		}
	}
}

func (d *Demo) botRoutine(bot *game.Game) {
	logger := d.logger.With(zap.String("bot", bot.Player().Name))
	w := watch(d.ctx, bot.Subscribe())
	botID := bot.Player().ID
	acted := -1

	for {
		var table *engine.GameState
		var moves int
		err := w.waitFor(d.ctx, dealTimeout, func(state *protocol.State, t *engine.GameState) bool {
			if t == nil || state == nil || t.Phase() == engine.PhaseAwaitingStart {
				return false
			}
			table, moves = t, len(state.Moves)
			return t.Completed || (moves > acted && t.TurnPlayer().ID == botID)
		})
		if err != nil {
			logger.Warn("bot stopped", zap.Error(err))
			return
		}
		if table.Completed {
			return
		}

		humanDelay()
		acted = moves
		me := table.TurnPlayer()
		switch table.Phase() {
		case engine.PhaseMissionDraft:
			template := table.Pool[0]
			err = bot.Draft(template.ID, secretX(template))
		case engine.PhaseTrickPlay:
			err = bot.Play(me.Hand[rand.Intn(len(me.Hand))])
		}
		if err != nil {
			logger.Warn("bot move failed", zap.Error(err))
		}
	}
}

func (d *Demo) createBot(name string) (*game.Game, error) {
	logger := config.Logger.Named(strings.ToLower(name))

	tr := transport.NewNode(d.ctx, logger, transport.SettingsFromConfig())
	err := tr.Initialize()
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize transport")
	}

	err = tr.Start()
	if err != nil {
		return nil, errors.Wrap(err, "failed to start transport")
	}

	bot := game.NewGame([]game.Option{
		game.WithContext(d.ctx),
		game.WithTransport(tr),
		game.WithPlayerName(name),
		game.WithClock(clockwork.NewRealClock()),
		game.WithLogger(logger),
		game.WithOnlineMessagePeriod(config.OnlineMessagePeriod()),
	})

	err = bot.Initialize()
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize bot")
	}

	err = bot.JoinRoom(d.host.RoomID(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to join room")
	}

	return bot, nil
}

func (d *Demo) waitFor(timeout time.Duration, condition func(*protocol.State, *engine.GameState) bool) error {
	return d.watcher.waitFor(d.ctx, timeout, condition)
}

func (d *Demo) sendShortcut(binding key.Binding) {
	d.program.Send(tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune(binding.Keys()[0]),
	})
}

func (d *Demo) sendKey(keyType tea.KeyType) {
	d.program.Send(tea.KeyMsg{Type: keyType})
}

// sendAction types the action in command mode.
func (d *Demo) sendAction(action string) {
	d.sendKey(tea.KeyShiftTab)
	time.Sleep(200 * time.Millisecond)
	d.program.Send(tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune(action),
	})
	time.Sleep(500 * time.Millisecond)
	d.sendKey(tea.KeyEnter)
	d.sendKey(tea.KeyShiftTab)
}

// secretX picks one trick for templates that ask for a hidden count.
func secretX(template missions.Template) *int {
	if !template.HasSecretX() {
		return nil
	}
	x := 1
	return &x
}

func draftArgument(template missions.Template) string {
	if x := secretX(template); x != nil {
		return template.ID + " " + strconv.Itoa(*x)
	}
	return template.ID
}

func humanDelay() {
	time.Sleep(time.Duration(500+rand.Intn(1500)) * time.Millisecond)
}

// watcher keeps the latest state and table of a subscription.
type watcher struct {
	mutex   sync.Mutex
	state   *protocol.State
	table   *engine.GameState
	changed chan struct{}
}

func watch(ctx context.Context, sub *game.Subscription) *watcher {
	w := &watcher{changed: make(chan struct{}, 1)}
	go w.loop(ctx, sub)
	return w
}

func (w *watcher) loop(ctx context.Context, sub *game.Subscription) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, more := <-sub.Events:
			if !more {
				return
			}
			w.mutex.Lock()
			switch data := event.Data.(type) {
			case *protocol.State:
				w.state = data
			case *engine.GameState:
				w.table = data
			}
			w.mutex.Unlock()

			select {
			case w.changed <- struct{}{}:
			default:
			}
		}
	}
}

func (w *watcher) check(condition func(*protocol.State, *engine.GameState) bool) bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return condition(w.state, w.table)
}

func (w *watcher) waitFor(ctx context.Context, timeout time.Duration, condition func(*protocol.State, *engine.GameState) bool) error {
	deadline := time.After(timeout)
	for {
		if w.check(condition) {
			return nil
		}
		select {
		case <-w.changed:
		case <-time.After(500 * time.Millisecond):
		case <-deadline:
			return errors.New("timeout waiting for condition")
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
