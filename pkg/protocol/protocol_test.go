package protocol

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

func TestRoomID(t *testing.T) {
	sent, err := NewRoom()
	require.NoError(t, err)

	roomID := sent.ToRoomID()
	require.NotEmpty(t, roomID)

	received, err := ParseRoomID(roomID.String())
	require.NoError(t, err)
	require.NotEmpty(t, received)

	require.True(t, reflect.DeepEqual(sent, received))
	require.Equal(t, sent.Version, received.Version)
	require.Equal(t, sent.SymmetricKey, received.SymmetricKey)
}

func TestRoomIDInvalid(t *testing.T) {
	_, err := ParseRoomID("0OIl")
	require.ErrorIs(t, err, ErrInvalidRoomID)

	_, err = ParseRoomID("")
	require.ErrorIs(t, err, ErrInvalidRoomID)

	short := &Room{Version: RoomVersion, SymmetricKey: []byte{1, 2, 3}}
	_, err = ParseRoomID(short.ToRoomID().String())
	require.ErrorIs(t, err, ErrInvalidRoomID)

	future := &Room{Version: RoomVersion + 1, SymmetricKey: make([]byte, 32)}
	_, err = ParseRoomID(future.ToRoomID().String())
	require.ErrorIs(t, err, ErrUnsupportedRoomVersion)
}

func TestDeck(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, DeckSize)
	require.Equal(t, 40, DeckSize)
	require.Equal(t, Card("B1"), deck[0])
	require.Equal(t, Card("B9"), deck[8])
	require.Equal(t, Card("P1"), deck[9])
	require.Equal(t, Card("Y1"), deck[18])
	require.Equal(t, Card("G1"), deck[27])
	require.Equal(t, Card("s1"), deck[36])
	require.Equal(t, LeadTrump, deck[39])

	for _, card := range deck {
		require.True(t, card.Valid(), card)
	}
}

func TestDeckSort(t *testing.T) {
	hand := Deck{"s1", "Y2", "B9", "P4", "G7", "B1"}
	hand.Sort()
	require.Equal(t, Deck{"B1", "B9", "G7", "P4", "Y2", "s1"}, hand)

	require.True(t, hand.Remove("P4"))
	require.False(t, hand.Remove("P4"))
	require.Equal(t, Deck{"B1", "B9", "G7", "Y2", "s1"}, hand)
}

func TestParseCard(t *testing.T) {
	card, err := ParseCard("G7")
	require.NoError(t, err)
	require.Equal(t, Green, card.Suit())
	require.Equal(t, 7, card.Rank())
	require.False(t, card.IsTrump())

	card, err = ParseCard("s3")
	require.NoError(t, err)
	require.True(t, card.IsTrump())

	for _, input := range []string{"", "G", "G0", "s5", "X1", "B10", "b1"} {
		_, err = ParseCard(input)
		require.ErrorIs(t, err, ErrInvalidCard, input)
	}
}

func TestMoveTokens(t *testing.T) {
	tokens := []string{
		"abc:p:B3",
		"abc:h:Y7:top",
		"abc:h:G2:only",
		"abc:h:P5:bottom",
		"abc:h:cancel",
		"abc:d:42",
		"abc:d:9:3",
		"abc:d:pass",
		"abc:e:trust",
		"abc:u",
	}

	for _, token := range tokens {
		move, err := ParseMove(token)
		require.NoError(t, err, token)
		require.Equal(t, PlayerID("abc"), move.Sender)
		require.Equal(t, token, move.String())
	}
}

func TestParseMove(t *testing.T) {
	move, err := ParseMove("9f1c:d:9:3")
	require.NoError(t, err)
	require.Equal(t, MoveDraft, move.Type)
	require.Equal(t, "9", move.Mission)
	require.NotNil(t, move.X)
	require.Equal(t, 3, *move.X)
	require.False(t, move.IsPass())

	move, err = ParseMove("9f1c:d:pass")
	require.NoError(t, err)
	require.True(t, move.IsPass())
	require.Nil(t, move.X)

	move, err = ParseMove("9f1c:h:cancel")
	require.NoError(t, err)
	require.Equal(t, MoveHint, move.Type)
	require.Nil(t, move.Hint)

	move, err = ParseMove("9f1c:h:B2:only")
	require.NoError(t, err)
	require.Equal(t, &Hint{Card: "B2", Type: HintOnly}, move.Hint)
}

func TestParseMoveMalformed(t *testing.T) {
	tokens := []string{
		"",
		"abc",
		":p:B3",
		"abc:x",
		"abc:p",
		"abc:p:Z9",
		"abc:h:B3",
		"abc:h:B3:middle",
		"abc:d",
		"abc:d:3:x",
		"abc:e:angry",
		"abc:u:1",
	}

	for _, token := range tokens {
		_, err := ParseMove(token)
		require.Error(t, err, token)
	}

	var skipped []string
	moves := ParseMoves(append(tokens, "abc:u"), func(token string, err error) {
		skipped = append(skipped, token)
	})
	require.Len(t, moves, 1)
	require.Equal(t, tokens, skipped)
}

func TestTrickWinner(t *testing.T) {
	testCases := []struct {
		name   string
		cards  []PlayedCard
		winner SeatKey
	}{
		{
			name: "sub beats lead suit",
			cards: []PlayedCard{
				{Card: "G5", Position: Seat1},
				{Card: "B9", Position: Seat2},
				{Card: "s1", Position: Seat3},
			},
			winner: Seat3,
		},
		{
			name: "highest of lead suit",
			cards: []PlayedCard{
				{Card: "P3", Position: Seat2},
				{Card: "P8", Position: Seat3},
				{Card: "G9", Position: Seat1},
				{Card: "P5", Position: Seat4},
			},
			winner: Seat3,
		},
		{
			name: "highest sub",
			cards: []PlayedCard{
				{Card: "s2", Position: Seat4},
				{Card: "Y9", Position: Seat5},
				{Card: "s3", Position: Seat1},
			},
			winner: Seat1,
		},
		{
			name: "lead keeps the trick",
			cards: []PlayedCard{
				{Card: "Y4", Position: Seat2},
				{Card: "B9", Position: Seat3},
				{Card: "G9", Position: Seat1},
			},
			winner: Seat2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			trick := Trick{Cards: tc.cards}
			require.Equal(t, tc.winner, trick.Winner().Position)
		})
	}
}

func TestServerStateHash(t *testing.T) {
	hash := map[string]string{
		"seed1":         "1",
		"seed2":         "4294967295",
		"seed3":         "3",
		"seed4":         "4",
		"seat1":         "a1:Alice",
		"seat2":         "",
		"seat3":         "c3:Carol:Jr",
		"seat4":         "d4:Dave",
		"seat5":         "",
		"meta":          `{"target":9}`,
		"startingSeats": "seat1,seat3,seat4",
		"status":        "started",
	}

	state, err := ServerStateFromHash(hash)
	require.NoError(t, err)
	require.Equal(t, Seeds{1, 4294967295, 3, 4}, state.Seeds)
	require.Equal(t, Occupant{ID: "a1", Name: "Alice"}, state.Occupant(Seat1))
	require.True(t, state.Occupant(Seat2).Empty())
	require.Equal(t, Occupant{ID: "c3", Name: "Carol:Jr"}, state.Occupant(Seat3))
	require.Equal(t, 9, state.Target())
	require.Equal(t, []SeatKey{Seat1, Seat3, Seat4}, state.StartingSeats)
	require.True(t, state.Started())

	encoded, err := state.ToHash()
	require.NoError(t, err)
	require.Equal(t, hash, encoded)
}

func TestServerStateHashDefaults(t *testing.T) {
	state, err := ServerStateFromHash(map[string]string{})
	require.NoError(t, err)
	require.Equal(t, StatusWaiting, state.Status)
	require.Equal(t, DefaultTarget, state.Target())
	require.Empty(t, state.StartingSeats)

	_, err = ServerStateFromHash(map[string]string{"seed1": "-1"})
	require.Error(t, err)

	_, err = ServerStateFromHash(map[string]string{"startingSeats": "seat9"})
	require.ErrorIs(t, err, ErrInvalidSeat)
}

func TestServerStateSeating(t *testing.T) {
	state := NewServerState(NewSeeds())

	occupants := make([]Occupant, SeatsCount+1)
	for i := range occupants {
		occupants[i] = Occupant{ID: PlayerID(gofakeit.UUID()), Name: gofakeit.Username()}
	}

	for i := 0; i < SeatsCount; i++ {
		seat, ok := state.TakeSeat(occupants[i])
		require.True(t, ok)
		require.Equal(t, Seats[i], seat)
	}

	_, ok := state.TakeSeat(occupants[SeatsCount])
	require.False(t, ok)

	renamed := occupants[2]
	renamed.Name = gofakeit.Username()
	seat, ok := state.TakeSeat(renamed)
	require.True(t, ok)
	require.Equal(t, Seat3, seat)
	require.Equal(t, renamed.Name, state.Occupant(Seat3).Name)

	require.True(t, state.LeaveSeat(occupants[1].ID))
	require.False(t, state.LeaveSeat(occupants[1].ID))
	require.Equal(t, SeatsCount-1, state.SeatedCount())

	state.Start()
	require.Equal(t, []SeatKey{Seat1, Seat3, Seat4, Seat5}, state.StartingSeats)
	require.Equal(t, StatusStarted, state.Status)

	seeds := NewSeeds()
	state.Reset(seeds)
	require.Equal(t, seeds, state.Seeds)
	require.Empty(t, state.StartingSeats)
	require.Equal(t, StatusWaiting, state.Status)
	require.Equal(t, SeatsCount-1, state.SeatedCount())
}

func TestSeeds(t *testing.T) {
	seeds := Seeds{gofakeit.Uint32(), gofakeit.Uint32(), gofakeit.Uint32(), gofakeit.Uint32()}
	parsed, err := ParseSeeds(seeds.String())
	require.NoError(t, err)
	require.Equal(t, seeds, parsed)

	_, err = ParseSeeds("1-2-3")
	require.Error(t, err)
	_, err = ParseSeeds("1-2-3-x")
	require.Error(t, err)

	require.NotEqual(t, NewSeeds(), NewSeeds())
}

func TestMatchSummary(t *testing.T) {
	payload := `{
		"seed1": 1, "seed2": 2, "seed3": 3, "seed4": 4,
		"success": true, "completed": true, "undo_used": false,
		"meta": {"target": 12},
		"created_at": 1700000000000, "updated_at": 1700000100000,
		"moves": ["b:d:12", "b:p:s4"],
		"players": {
			"a": {"seat": "seat1", "name": "Alice"},
			"b": {"seat": "seat2", "name": "Bob"},
			"c": {"seat": "seat4", "name": "Carol"}
		}
	}`

	var summary MatchSummary
	err := json.Unmarshal([]byte(payload), &summary)
	require.NoError(t, err)
	require.NoError(t, summary.Validate())
	require.Equal(t, Seeds{1, 2, 3, 4}, summary.Seeds())

	state, err := summary.ServerState()
	require.NoError(t, err)
	require.Equal(t, []SeatKey{Seat1, Seat2, Seat4}, state.StartingSeats)
	require.True(t, state.Started())
	require.Equal(t, Occupant{ID: "c", Name: "Carol"}, state.Occupant(Seat4))

	participants := summary.Participants()
	require.Len(t, participants, 3)
	require.Equal(t, PlayerID("a"), participants[0].ID)
	require.Equal(t, PlayerID("c"), participants[2].ID)

	summary.Players["d"] = MatchParticipant{Seat: Seat1, Name: "Dup"}
	require.Error(t, summary.Validate())
}

func TestMessages(t *testing.T) {
	message := PlayerMoveMessage{
		Message: Message{Type: MessageTypePlayerMove, Timestamp: gofakeit.Int64()},
		Move:    "abc:p:B3",
	}
	payload, err := json.Marshal(message)
	require.NoError(t, err)

	decoded, err := UnmarshalPlayerMoveMessage(payload)
	require.NoError(t, err)
	require.Equal(t, message, *decoded)

	_, err = UnmarshalStateMessage(payload)
	require.Error(t, err)

	_, err = UnmarshalMessage([]byte("{"))
	require.Error(t, err)
}

func TestStateUndoUsed(t *testing.T) {
	state := NewState(NewSeeds())
	state.Moves = []string{"a:d:1", "a:p:B1", "garbage"}
	require.False(t, state.UndoUsed())

	state.Moves = append(state.Moves, "b:u")
	require.True(t, state.UndoUsed())

	clone := state.Clone()
	clone.Moves[0] = "x:u"
	require.Equal(t, "a:d:1", state.Moves[0])
}
