package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/six78/crew-cli/internal/config"
	"github.com/six78/crew-cli/internal/transport"
	"github.com/six78/crew-cli/internal/view/commands"
	"github.com/six78/crew-cli/internal/view/components/eventhandler"
	"github.com/six78/crew-cli/internal/view/components/handview"
	"github.com/six78/crew-cli/internal/view/components/statusview"
	"github.com/six78/crew-cli/internal/view/messages"
	"github.com/six78/crew-cli/internal/view/states"
	"github.com/six78/crew-cli/internal/view/update"
	"github.com/six78/crew-cli/pkg/engine"
	"github.com/six78/crew-cli/pkg/game"
	"github.com/six78/crew-cli/pkg/protocol"
)

type model struct {
	game          *game.Game
	transport     transport.Service
	initialAction string

	// State received from the game and the transport
	state            states.AppState
	fatalError       error
	lastError        error
	playerID         protocol.PlayerID
	roomID           protocol.RoomID
	isHost           bool
	roomState        *protocol.State
	table            *engine.GameState
	lastMatch        *protocol.MatchSummary
	connectionStatus transport.ConnectionStatus

	// UI components
	commandMode           bool
	input                 textinput.Model
	spinner               spinner.Model
	help                  help.Model
	statusView            statusview.Model
	handView              handview.Model
	gameEventHandler      eventhandler.Model[game.Event, messages.GameEvent]
	transportEventHandler eventhandler.Model[transport.ConnectionStatus, messages.ConnectionStatus]
}

func initialModel(game *game.Game, transport transport.Service, initialAction string) model {
	return model{
		game:          game,
		transport:     transport,
		initialAction: initialAction,
		state:         states.Initializing,
		input:         createInput(),
		spinner:       createSpinner(),
		help:          help.New(),
		statusView:    statusview.New(),
		handView:      handview.New(),
	}
}

func createInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "type an action"
	input.CharLimit = 256
	return input
}

func createSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return s
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.statusView.Init(),
		m.handView.Init(),
		commands.InitializeApp(m.game, m.transport),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := update.NewUpdateCommands()

	switchToState := func(state states.AppState) {
		m.state = state
		cmds.AppendMessage(messages.AppStateMessage{State: state})
	}

	switch msg := msg.(type) {
	case messages.FatalErrorMessage:
		m.fatalError = msg.Err

	case messages.ErrorMessage:
		m.lastError = msg.Err

	case messages.AppStateFinishedMessage:
		switch msg.State {
		case states.Initializing:
			cmds.AppendMessage(messages.PlayerIDMessage{
				PlayerID: m.game.Player().ID,
			})
			if m.game.Player().Name == "" {
				m.input.Placeholder = "enter your name"
				m.input.Focus()
				switchToState(states.InputPlayerName)
			} else {
				switchToState(states.WaitingForPeers)
			}
			cmds.AppendCommand(m.subscribe())

		case states.InputPlayerName:
			m.input.Placeholder = "type an action"
			m.input.Blur()
			switchToState(states.WaitingForPeers)

		case states.WaitingForPeers:
			switchToState(states.Playing)
			if m.initialAction != "" {
				cmds.AppendCommand(ProcessAction(&m, m.initialAction))
			}
		}

	case messages.AppStateMessage:
		m.skipWaitingForPeers(cmds)

	case messages.ConnectionStatus:
		m.connectionStatus = msg.Status
		m.skipWaitingForPeers(cmds)

	case messages.PlayerIDMessage:
		m.playerID = msg.PlayerID

	case messages.GameEvent:
		switch msg.Tag {
		case game.EventStateChanged:
			m.roomState = msg.State
		case game.EventGameChanged:
			m.table = msg.Table
		case game.EventMatchSaved:
			m.lastMatch = msg.Match
		}

	case messages.CommandModeChange:
		m.commandMode = msg.CommandMode
		if m.commandMode {
			cmds.AppendCommand(m.input.Focus())
		} else {
			m.input.Blur()
		}

	case messages.RoomJoin:
		m.roomID = msg.RoomID
		m.isHost = msg.IsHost
		m.lastMatch = nil
		config.Logger.Debug("room joined",
			zap.String("roomID", msg.RoomID.String()),
			zap.Bool("isHost", msg.IsHost))

	case tea.KeyMsg:
		cmds.AppendCommand(m.handleKey(msg))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds.AppendComponent(cmd)
	m.spinner, cmd = m.spinner.Update(msg)
	cmds.AppendComponent(cmd)
	m.gameEventHandler, cmd = m.gameEventHandler.Update(msg)
	cmds.AppendComponent(cmd)
	m.transportEventHandler, cmd = m.transportEventHandler.Update(msg)
	cmds.AppendComponent(cmd)
	m.statusView = m.statusView.Update(msg)
	m.handView = m.handView.Update(msg)

	return m, cmds.Batch()
}

// subscribe starts delivering transport and game events to the model.
func (m *model) subscribe() tea.Cmd {
	convertStatus := func(status transport.ConnectionStatus) messages.ConnectionStatus {
		return messages.ConnectionStatus{Status: status}
	}
	m.transportEventHandler = eventhandler.New[transport.ConnectionStatus, messages.ConnectionStatus](convertStatus)

	m.gameEventHandler = eventhandler.New[game.Event, messages.GameEvent](messages.NewGameEvent)
	current := game.Event{Tag: game.EventGameChanged, Data: m.game.Table()}

	return tea.Batch(
		m.transportEventHandler.Init(m.transport.SubscribeToConnectionStatus(), m.transport.ConnectionStatus()),
		m.gameEventHandler.Init(m.game.Subscribe().Events, current),
	)
}

func (m *model) skipWaitingForPeers(cmds *update.Commands) {
	if m.state == states.WaitingForPeers && m.connectionStatus.PeersCount > 0 {
		cmds.AppendMessage(messages.AppStateFinishedMessage{State: states.WaitingForPeers})
	}
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return commands.QuitApp(m.game)
	case tea.KeyEnter:
		if m.input.Focused() {
			return ProcessUserInput(m)
		}
		if _, ok := m.handView.Selected(); ok {
			return runPlayAction(m, nil)
		}
		return nil
	case tea.KeyShiftTab:
		if m.state != states.Playing {
			return nil
		}
		commandMode := !m.commandMode
		return func() tea.Msg {
			return messages.CommandModeChange{CommandMode: commandMode}
		}
	}

	if m.input.Focused() || m.state != states.Playing {
		return nil
	}

	if m.roomID.Empty() {
		if key.Matches(msg, commands.DefaultKeyMap.NewRoom) {
			return runNewAction(m, nil)
		}
		return nil
	}

	switch {
	case key.Matches(msg, commands.DefaultKeyMap.ExitRoom):
		return runExitAction(m, nil)
	case key.Matches(msg, commands.DefaultKeyMap.Start):
		return runStartAction(m, nil)
	case key.Matches(msg, commands.DefaultKeyMap.Hint):
		return runHintAction(m, nil)
	case key.Matches(msg, commands.DefaultKeyMap.Pass):
		return runPassAction(m, nil)
	case key.Matches(msg, commands.DefaultKeyMap.Undo):
		return runUndoAction(m, nil)
	}
	return nil
}

func (m model) View() string {
	if m.fatalError != nil {
		return fmt.Sprintf(" ☠️ fatal error: %s\n%s", m.fatalError, renderLogPath())
	}

	view := "\n"
	if config.Debug() {
		view += fmt.Sprintf("%s\n\n", renderLogPath())
	}
	view += m.renderAppState()

	return lipgloss.JoinHorizontal(lipgloss.Left, "  ", view)
}

var _ tea.Model = (*model)(nil)
