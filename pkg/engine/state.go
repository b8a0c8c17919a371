package engine

import (
	"sort"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/six78/crew-cli/pkg/missions"
	"github.com/six78/crew-cli/pkg/protocol"
)

const InitialPasses = 2

type Phase string

const (
	PhaseAwaitingStart Phase = "awaiting-start"
	PhaseMissionDraft  Phase = "mission-draft"
	PhaseTrickPlay     Phase = "trick-play"
	PhaseGameOver      Phase = "game-over"
)

// Outcome tells the caller what a move did to the state.
type Outcome int

const (
	Ignored Outcome = iota
	Applied
	Queued
	TrickCompleted
	// RebuildRequired is returned for an undo. The caller must reconstruct
	// the state from the whole move log.
	RebuildRequired
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Applied:
		return "applied"
	case Queued:
		return "queued"
	case TrickCompleted:
		return "trick-completed"
	case RebuildRequired:
		return "rebuild-required"
	}
	return "unknown"
}

type Player struct {
	Seat            protocol.SeatKey    `json:"seat"`
	ID              protocol.PlayerID   `json:"id"`
	Name            string              `json:"name"`
	Hand            protocol.Deck       `json:"hand"`
	Missions        []*missions.Mission `json:"missions"`
	Hint            *protocol.Hint      `json:"hint,omitempty"`
	PassesRemaining int                 `json:"passesRemaining"`
	Tricks          []protocol.Trick    `json:"tricks"`
	Emote           protocol.Emote      `json:"emote,omitempty"`
}

func (p *Player) clone() *Player {
	clone := *p
	clone.Hand = p.Hand.Clone()
	clone.Hint = p.Hint.Clone()
	clone.Missions = make([]*missions.Mission, len(p.Missions))
	for i, mission := range p.Missions {
		clone.Missions[i] = mission.Clone()
	}
	clone.Tricks = make([]protocol.Trick, len(p.Tricks))
	for i := range p.Tricks {
		clone.Tricks[i] = p.Tricks[i].Clone()
	}
	return &clone
}

// GameState is the state of a deal rebuilt from the seeds, the seating and the move log.
type GameState struct {
	Players       [protocol.SeatsCount]*Player `json:"players"`
	ActiveTrick   protocol.Trick               `json:"activeTrick"`
	PreviousTrick protocol.Trick               `json:"previousTrick"`
	NumPlayers    int                          `json:"numPlayers"`
	CaptainSeat   protocol.SeatKey             `json:"captainSeat"`
	TotalTricks   int                          `json:"totalTricks"`
	Pool          []missions.Template          `json:"-"`
	WhoseTurn     protocol.SeatKey             `json:"whoseTurn"`
	UndoUsed      bool                         `json:"undoUsed"`
	Succeeded     bool                         `json:"succeeded"`
	Completed     bool                         `json:"completed"`

	server protocol.ServerState
	dealt  bool
	hints  *hintQueue
	config config
}

type config struct {
	logger   *zap.Logger
	viewer   protocol.PlayerID
	validate bool
}

type Option func(*config)

// WithViewer sets the participant the state is rebuilt for.
// Hidden values chosen by the viewer stay visible to them.
func WithViewer(id protocol.PlayerID) Option {
	return func(c *config) {
		c.viewer = id
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMissionValidation toggles mission status updates after each trick.
func WithMissionValidation(enabled bool) Option {
	return func(c *config) {
		c.validate = enabled
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		logger:   zap.NewNop(),
		validate: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	cfg.logger = cfg.logger.Named("engine")
	return cfg
}

func newGameState(server protocol.ServerState, cfg config) *GameState {
	s := &GameState{
		PreviousTrick: protocol.Trick{Cards: []protocol.PlayedCard{}, Index: -1},
		ActiveTrick:   protocol.Trick{Cards: []protocol.PlayedCard{}},
		server:        server,
		hints:         newHintQueue(),
		config:        cfg,
	}
	s.server.StartingSeats = slices.Clone(server.StartingSeats)

	for i, seat := range protocol.Seats {
		occupant := server.Seats[i]
		s.Players[i] = &Player{
			Seat:            seat,
			ID:              occupant.ID,
			Name:            occupant.Name,
			Hand:            protocol.Deck{},
			Missions:        []*missions.Mission{},
			PassesRemaining: InitialPasses,
			Tricks:          []protocol.Trick{},
		}
	}
	return s
}

func (s *GameState) Phase() Phase {
	switch {
	case !s.server.Started() || !s.dealt:
		return PhaseAwaitingStart
	case len(s.Pool) > 0:
		return PhaseMissionDraft
	case s.Completed:
		return PhaseGameOver
	}
	return PhaseTrickPlay
}

func (s *GameState) Server() protocol.ServerState {
	return s.server
}

// ActiveSeats returns the seats taking part in the deal, in turn order.
func (s *GameState) ActiveSeats() []protocol.SeatKey {
	return slices.Clone(s.server.StartingSeats)
}

func (s *GameState) Player(seat protocol.SeatKey) *Player {
	index := seat.Index()
	if index < 0 {
		return nil
	}
	return s.Players[index]
}

// PlayerByID returns the seated player with the participant id.
func (s *GameState) PlayerByID(id protocol.PlayerID) *Player {
	if id == "" {
		return nil
	}
	for _, player := range s.Players {
		if player.ID == id {
			return player
		}
	}
	return nil
}

func (s *GameState) activePlayerByID(id protocol.PlayerID) *Player {
	player := s.PlayerByID(id)
	if player == nil || !slices.Contains(s.server.StartingSeats, player.Seat) {
		return nil
	}
	return player
}

func (s *GameState) TurnPlayer() *Player {
	return s.Player(s.WhoseTurn)
}

// Tricks returns all completed tricks in play order.
func (s *GameState) Tricks() []protocol.Trick {
	tricks := make([]protocol.Trick, 0, s.ActiveTrick.Index)
	for _, player := range s.Players {
		tricks = append(tricks, player.Tricks...)
	}
	sort.Slice(tricks, func(i, j int) bool {
		return tricks[i].Index < tricks[j].Index
	})
	return tricks
}

// Round is the view of the deal used to validate missions.
func (s *GameState) Round() missions.Round {
	return missions.Round{
		NumPlayers:  s.NumPlayers,
		TotalTricks: s.TotalTricks,
		Captain:     s.CaptainSeat,
		Seats:       s.ActiveSeats(),
		Tricks:      s.Tricks(),
	}
}

// AssignedMissions returns the missions of all players in seat order.
func (s *GameState) AssignedMissions() []*missions.Mission {
	var result []*missions.Mission
	for _, player := range s.Players {
		result = append(result, player.Missions...)
	}
	return result
}

func (s *GameState) Clone() *GameState {
	clone := *s
	for i, player := range s.Players {
		clone.Players[i] = player.clone()
	}
	clone.ActiveTrick = s.ActiveTrick.Clone()
	clone.PreviousTrick = s.PreviousTrick.Clone()
	clone.Pool = slices.Clone(s.Pool)
	clone.server.StartingSeats = slices.Clone(s.server.StartingSeats)
	clone.hints = s.hints.clone()
	return &clone
}
