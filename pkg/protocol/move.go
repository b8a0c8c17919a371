package protocol

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type MoveType string

const (
	MovePlay  MoveType = "p"
	MoveHint  MoveType = "h"
	MoveDraft MoveType = "d"
	MoveEmote MoveType = "e"
	MoveUndo  MoveType = "u"
)

const (
	DraftPass  = "pass"
	hintCancel = "cancel"
)

type Emote string

const (
	EmoteDistress Emote = "distress"
	EmoteWinnable Emote = "winnable"
	EmoteTrust    Emote = "trust"
	EmoteNone     Emote = "none"
)

var (
	ErrMalformedMove = errors.New("malformed move")
	ErrUnknownMove   = errors.New("unknown move type")
)

// Move is a single entry of the shared move log.
// Token form is "<sender>:<type>[:<args>]".
type Move struct {
	Sender PlayerID
	Type   MoveType

	// Card is the played card of a MovePlay.
	Card Card

	// Hint is the signal of a MoveHint, nil cancels the current signal.
	Hint *Hint

	// Mission is the drafted template id or DraftPass.
	Mission string
	// X is the optional hidden parameter chosen while drafting.
	X *int

	Emote Emote
}

func PlayMove(sender PlayerID, card Card) Move {
	return Move{Sender: sender, Type: MovePlay, Card: card}
}

func HintMove(sender PlayerID, card Card, hintType HintType) Move {
	return Move{Sender: sender, Type: MoveHint, Hint: &Hint{Card: card, Type: hintType}}
}

func CancelHintMove(sender PlayerID) Move {
	return Move{Sender: sender, Type: MoveHint}
}

func DraftMove(sender PlayerID, missionID string, x *int) Move {
	return Move{Sender: sender, Type: MoveDraft, Mission: missionID, X: x}
}

func PassMove(sender PlayerID) Move {
	return Move{Sender: sender, Type: MoveDraft, Mission: DraftPass}
}

func EmoteMove(sender PlayerID, emote Emote) Move {
	return Move{Sender: sender, Type: MoveEmote, Emote: emote}
}

func UndoMove(sender PlayerID) Move {
	return Move{Sender: sender, Type: MoveUndo}
}

func (m Move) IsPass() bool {
	return m.Type == MoveDraft && m.Mission == DraftPass
}

func ParseMove(token string) (Move, error) {
	parts := strings.Split(token, ":")
	if len(parts) < 2 || parts[0] == "" {
		return Move{}, errors.Wrapf(ErrMalformedMove, "'%s'", token)
	}

	move := Move{
		Sender: PlayerID(parts[0]),
		Type:   MoveType(parts[1]),
	}
	args := parts[2:]

	wrap := func(err error) (Move, error) {
		return Move{}, errors.Wrapf(err, "failed to parse move '%s'", token)
	}

	switch move.Type {
	case MovePlay:
		if len(args) != 1 {
			return wrap(ErrMalformedMove)
		}
		card, err := ParseCard(args[0])
		if err != nil {
			return wrap(err)
		}
		move.Card = card

	case MoveHint:
		if len(args) == 1 && args[0] == hintCancel {
			return move, nil
		}
		if len(args) != 2 {
			return wrap(ErrMalformedMove)
		}
		card, err := ParseCard(args[0])
		if err != nil {
			return wrap(err)
		}
		hintType, err := ParseHintType(args[1])
		if err != nil {
			return wrap(err)
		}
		move.Hint = &Hint{Card: card, Type: hintType}

	case MoveDraft:
		if len(args) < 1 || len(args) > 2 || args[0] == "" {
			return wrap(ErrMalformedMove)
		}
		move.Mission = args[0]
		if len(args) == 2 && args[1] != "" {
			x, err := strconv.Atoi(args[1])
			if err != nil {
				return wrap(err)
			}
			move.X = &x
		}

	case MoveEmote:
		if len(args) != 1 {
			return wrap(ErrMalformedMove)
		}
		switch emote := Emote(args[0]); emote {
		case EmoteDistress, EmoteWinnable, EmoteTrust, EmoteNone:
			move.Emote = emote
		default:
			return wrap(ErrMalformedMove)
		}

	case MoveUndo:
		if len(args) != 0 {
			return wrap(ErrMalformedMove)
		}

	default:
		return wrap(ErrUnknownMove)
	}

	return move, nil
}

// Action returns the token without the sender prefix, as submitted by a client.
func (m Move) Action() string {
	parts := []string{string(m.Type)}

	switch m.Type {
	case MovePlay:
		parts = append(parts, m.Card.String())
	case MoveHint:
		if m.Hint == nil {
			parts = append(parts, hintCancel)
		} else {
			parts = append(parts, m.Hint.Card.String(), string(m.Hint.Type))
		}
	case MoveDraft:
		parts = append(parts, m.Mission)
		if m.X != nil {
			parts = append(parts, strconv.Itoa(*m.X))
		}
	case MoveEmote:
		parts = append(parts, string(m.Emote))
	}

	return strings.Join(parts, ":")
}

func (m Move) String() string {
	return string(m.Sender) + ":" + m.Action()
}

// ParseMoves parses a move log. Malformed tokens are reported to onError and skipped.
func ParseMoves(tokens []string, onError func(token string, err error)) []Move {
	moves := make([]Move, 0, len(tokens))
	for _, token := range tokens {
		move, err := ParseMove(token)
		if err != nil {
			if onError != nil {
				onError(token, err)
			}
			continue
		}
		moves = append(moves, move)
	}
	return moves
}
