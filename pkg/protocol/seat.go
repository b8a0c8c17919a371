package protocol

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

const SeatsCount = 5

type SeatKey string

const (
	Seat1 SeatKey = "seat1"
	Seat2 SeatKey = "seat2"
	Seat3 SeatKey = "seat3"
	Seat4 SeatKey = "seat4"
	Seat5 SeatKey = "seat5"
)

var Seats = []SeatKey{Seat1, Seat2, Seat3, Seat4, Seat5}

var ErrInvalidSeat = errors.New("invalid seat")

func ParseSeat(input string) (SeatKey, error) {
	seat := SeatKey(input)
	if !slices.Contains(Seats, seat) {
		return "", errors.Wrapf(ErrInvalidSeat, "'%s'", input)
	}
	return seat, nil
}

// Index returns the zero-based position of the seat, or -1.
func (s SeatKey) Index() int {
	return slices.Index(Seats, s)
}

func (s SeatKey) String() string {
	return string(s)
}

// Occupant is a participant sitting at a seat.
// Wire form is "<participantId>:<displayName>", empty for a free seat.
type Occupant struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`
}

func ParseOccupant(input string) Occupant {
	id, name, _ := strings.Cut(input, ":")
	return Occupant{
		ID:   PlayerID(id),
		Name: name,
	}
}

func (o Occupant) Empty() bool {
	return o.ID == ""
}

func (o Occupant) String() string {
	if o.Empty() {
		return ""
	}
	return string(o.ID) + ":" + o.Name
}
