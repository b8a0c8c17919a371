package protocol

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

const DefaultTarget = 12

type Status string

const (
	StatusWaiting Status = "waiting"
	StatusStarted Status = "started"
)

// Seeds initialize the deal generator. A deal is identified by its seeds.
type Seeds [4]uint32

// NewSeeds draws fresh seeds from a random UUID.
func NewSeeds() Seeds {
	id := uuid.New()
	var seeds Seeds
	for i := range seeds {
		seeds[i] = binary.BigEndian.Uint32(id[i*4 : i*4+4])
	}
	return seeds
}

func ParseSeeds(input string) (Seeds, error) {
	var seeds Seeds
	parts := strings.Split(input, "-")
	if len(parts) != len(seeds) {
		return seeds, errors.Errorf("expected %d seeds, got '%s'", len(seeds), input)
	}
	for i, part := range parts {
		value, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return seeds, errors.Wrap(err, "failed to parse seed")
		}
		seeds[i] = uint32(value)
	}
	return seeds, nil
}

func (s Seeds) String() string {
	return fmt.Sprintf("%d-%d-%d-%d", s[0], s[1], s[2], s[3])
}

type Meta struct {
	Target int `json:"target"`
}

// ServerState is the seating and deal configuration shared by all participants of a channel.
type ServerState struct {
	Seeds         Seeds                `json:"seeds"`
	Seats         [SeatsCount]Occupant `json:"seats"`
	Meta          Meta                 `json:"meta"`
	StartingSeats []SeatKey            `json:"startingSeats"`
	Status        Status               `json:"status"`
}

func NewServerState(seeds Seeds) ServerState {
	return ServerState{
		Seeds:         seeds,
		Meta:          Meta{Target: DefaultTarget},
		StartingSeats: []SeatKey{},
		Status:        StatusWaiting,
	}
}

func (s *ServerState) Target() int {
	if s.Meta.Target <= 0 {
		return DefaultTarget
	}
	return s.Meta.Target
}

func (s *ServerState) Started() bool {
	return s.Status == StatusStarted
}

func (s *ServerState) Occupant(seat SeatKey) Occupant {
	index := seat.Index()
	if index < 0 {
		return Occupant{}
	}
	return s.Seats[index]
}

func (s *ServerState) SeatOf(id PlayerID) (SeatKey, bool) {
	if id == "" {
		return "", false
	}
	for i, occupant := range s.Seats {
		if occupant.ID == id {
			return Seats[i], true
		}
	}
	return "", false
}

func (s *ServerState) SeatedCount() int {
	count := 0
	for _, occupant := range s.Seats {
		if !occupant.Empty() {
			count++
		}
	}
	return count
}

// TakeSeat places the participant at the first free seat.
// A seated participant keeps the seat, only the name is updated.
func (s *ServerState) TakeSeat(occupant Occupant) (SeatKey, bool) {
	if seat, ok := s.SeatOf(occupant.ID); ok {
		s.Seats[seat.Index()].Name = occupant.Name
		return seat, true
	}
	for i := range s.Seats {
		if s.Seats[i].Empty() {
			s.Seats[i] = occupant
			return Seats[i], true
		}
	}
	return "", false
}

func (s *ServerState) LeaveSeat(id PlayerID) bool {
	seat, ok := s.SeatOf(id)
	if !ok {
		return false
	}
	s.Seats[seat.Index()] = Occupant{}
	return true
}

// Start freezes the occupied seats as the active seats of the deal.
func (s *ServerState) Start() {
	s.StartingSeats = make([]SeatKey, 0, SeatsCount)
	for i, occupant := range s.Seats {
		if !occupant.Empty() {
			s.StartingSeats = append(s.StartingSeats, Seats[i])
		}
	}
	s.Status = StatusStarted
}

// Reset prepares a new deal with the same seating.
func (s *ServerState) Reset(seeds Seeds) {
	s.Seeds = seeds
	s.StartingSeats = []SeatKey{}
	s.Status = StatusWaiting
}

// serverStateHash is the flat string hash a relay keeps per channel.
type serverStateHash struct {
	Seed1         uint32 `mapstructure:"seed1"`
	Seed2         uint32 `mapstructure:"seed2"`
	Seed3         uint32 `mapstructure:"seed3"`
	Seed4         uint32 `mapstructure:"seed4"`
	Seat1         string `mapstructure:"seat1"`
	Seat2         string `mapstructure:"seat2"`
	Seat3         string `mapstructure:"seat3"`
	Seat4         string `mapstructure:"seat4"`
	Seat5         string `mapstructure:"seat5"`
	Meta          string `mapstructure:"meta"`
	StartingSeats string `mapstructure:"startingSeats"`
	Status        string `mapstructure:"status"`
}

func (s *ServerState) ToHash() (map[string]string, error) {
	meta, err := json.Marshal(s.Meta)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal meta")
	}

	startingSeats := make([]string, 0, len(s.StartingSeats))
	for _, seat := range s.StartingSeats {
		startingSeats = append(startingSeats, seat.String())
	}

	hash := map[string]string{
		"meta":          string(meta),
		"startingSeats": strings.Join(startingSeats, ","),
		"status":        string(s.Status),
	}
	for i, seed := range s.Seeds {
		hash[fmt.Sprintf("seed%d", i+1)] = strconv.FormatUint(uint64(seed), 10)
	}
	for i, seat := range Seats {
		hash[seat.String()] = s.Seats[i].String()
	}
	return hash, nil
}

func ServerStateFromHash(hash map[string]string) (ServerState, error) {
	var record serverStateHash
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: stringToUint32HookFunc(),
		Result:     &record,
	})
	if err != nil {
		return ServerState{}, errors.Wrap(err, "failed to create decoder")
	}

	err = decoder.Decode(hash)
	if err != nil {
		return ServerState{}, errors.Wrap(err, "failed to decode server state")
	}

	state := ServerState{
		Seeds:         Seeds{record.Seed1, record.Seed2, record.Seed3, record.Seed4},
		StartingSeats: []SeatKey{},
		Status:        Status(record.Status),
	}

	for i, seat := range []string{record.Seat1, record.Seat2, record.Seat3, record.Seat4, record.Seat5} {
		state.Seats[i] = ParseOccupant(seat)
	}

	if record.Meta != "" {
		err = json.Unmarshal([]byte(record.Meta), &state.Meta)
		if err != nil {
			return ServerState{}, errors.Wrap(err, "failed to unmarshal meta")
		}
	}

	if record.StartingSeats != "" {
		for _, part := range strings.Split(record.StartingSeats, ",") {
			seat, err := ParseSeat(part)
			if err != nil {
				return ServerState{}, err
			}
			state.StartingSeats = append(state.StartingSeats, seat)
		}
	}

	if state.Status == "" {
		state.Status = StatusWaiting
	}

	return state, nil
}

func stringToUint32HookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from != reflect.String || to != reflect.Uint32 {
			return data, nil
		}
		if data.(string) == "" {
			return uint32(0), nil
		}
		value, err := strconv.ParseUint(data.(string), 10, 32)
		if err != nil {
			return nil, err
		}
		return uint32(value), nil
	}
}
