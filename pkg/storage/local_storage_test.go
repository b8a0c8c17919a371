package storage

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shibukawa/configdir"
	"github.com/stretchr/testify/suite"

	"github.com/six78/crew-cli/internal/config"
	"github.com/six78/crew-cli/internal/testcommon"
	"github.com/six78/crew-cli/pkg/protocol"
)

func TestLocalStorage(t *testing.T) {
	suite.Run(t, &Suite{})
}

type Suite struct {
	testcommon.Suite
	storage  *LocalStorage
	tempPath string
}

func (s *Suite) SetupTest() {
	s.tempPath = s.T().TempDir()
	s.storage = NewLocalStorage(s.tempPath)
	s.Require().NotNil(s.storage)
	err := s.storage.Initialize()
	s.Require().NoError(err)
}

func (s *Suite) fakeState() *protocol.State {
	state := protocol.NewState(s.FakeSeeds())
	s.FakePlayers(&state.Server, 3)
	state.Server.Start()
	state.Moves = []string{
		protocol.PassMove(state.Server.Seats[0].ID).String(),
		protocol.DraftMove(state.Server.Seats[1].ID, "42", nil).String(),
	}
	for _, occupant := range state.Server.Seats[:3] {
		state.Players = append(state.Players, protocol.Player{
			ID:                          occupant.ID,
			Name:                        occupant.Name,
			Online:                      gofakeit.Bool(),
			OnlineTimestampMilliseconds: gofakeit.Int64(),
		})
	}
	return state
}

func (s *Suite) fakeSummary(players ...protocol.PlayerID) *protocol.MatchSummary {
	summary := &protocol.MatchSummary{
		Success:   gofakeit.Bool(),
		Completed: true,
		Meta:      protocol.Meta{Target: gofakeit.Number(1, 30)},
		CreatedAt: gofakeit.Int64(),
		Moves:     []string{gofakeit.LetterN(5)},
		Players:   map[protocol.PlayerID]protocol.MatchParticipant{},
	}
	summary.UpdatedAt = summary.CreatedAt
	summary.SetSeeds(s.FakeSeeds())
	for i, id := range players {
		summary.Players[id] = protocol.MatchParticipant{
			Seat: protocol.Seats[i],
			Name: gofakeit.Username(),
		}
	}
	return summary
}

func (s *Suite) TestLocalPath() {
	localPath := s.T().TempDir()

	storage := NewLocalStorage(localPath)
	s.Require().NotNil(storage)

	err := storage.Initialize()
	s.Require().NoError(err)
	s.Require().NotNil(storage.folder)
	s.Require().Equal(localPath, storage.folder.Path)
}

func (s *Suite) TestGlobalPath() {
	configDirs := configdir.New(config.VendorName, config.ApplicationName)
	folders := configDirs.QueryFolders(configdir.Global)
	s.Require().NotEmpty(folders)

	storage := NewLocalStorage("")
	err := storage.Initialize()
	s.Require().NoError(err)
	s.Require().NotNil(storage.folder)
	s.Require().Equal(folders[0].Path, storage.folder.Path)
}

func (s *Suite) TestPlayerStorage() {
	s.Require().Empty(s.storage.PlayerID())
	s.Require().Empty(s.storage.PlayerName())

	id := protocol.PlayerID(gofakeit.LetterN(5))
	err := s.storage.SetPlayerID(id)
	s.Require().NoError(err)
	s.Require().Equal(id, s.storage.PlayerID())
	s.Require().Empty(s.storage.PlayerName())

	name := gofakeit.LetterN(6)
	err = s.storage.SetPlayerName(name)
	s.Require().NoError(err)
	s.Require().Equal(id, s.storage.PlayerID())
	s.Require().Equal(name, s.storage.PlayerName())

	// Another storage over the same folder reads the saved player
	reopened := NewLocalStorage(s.tempPath)
	s.Require().NoError(reopened.Initialize())
	s.Require().Equal(id, reopened.PlayerID())
	s.Require().Equal(name, reopened.PlayerName())
}

func (s *Suite) TestRoomStorage() {
	roomID := protocol.NewRoomID(gofakeit.LetterN(5))
	state, err := s.storage.LoadRoomState(roomID)
	s.Require().ErrorIs(err, ErrRoomNotFound)
	s.Require().Nil(state)

	state = s.fakeState()
	err = s.storage.SaveRoomState(roomID, state)
	s.Require().NoError(err)

	loadedState, err := s.storage.LoadRoomState(roomID)
	s.Require().NoError(err)
	s.Require().Equal(state, loadedState)
}

func (s *Suite) TestResetPlayer() {
	id := protocol.PlayerID(gofakeit.LetterN(5))
	name := gofakeit.LetterN(6)

	err := s.storage.SetPlayerID(id)
	s.Require().NoError(err)
	err = s.storage.SetPlayerName(name)
	s.Require().NoError(err)

	err = s.storage.ResetPlayer()
	s.Require().NoError(err)
	s.Require().Empty(s.storage.PlayerID())
	s.Require().Empty(s.storage.PlayerName())
}

func (s *Suite) TestResetPlayerOnUnmarshalFailure() {
	id := protocol.PlayerID(gofakeit.LetterN(5))
	err := s.storage.SetPlayerID(id)
	s.Require().NoError(err)
	s.Require().Equal(id, s.storage.PlayerID())

	err = s.storage.folder.WriteFile(playerStorageFileName, []byte("{invalid json"))
	s.Require().NoError(err)

	newStorage := NewLocalStorage(s.tempPath)
	err = newStorage.Initialize()
	s.Require().NoError(err)
	s.Require().Empty(newStorage.PlayerID())
	s.Require().Empty(newStorage.PlayerName())
}

func (s *Suite) TestMatchLog() {
	ctx := context.Background()
	alice := protocol.PlayerID(gofakeit.UUID())
	bob := protocol.PlayerID(gofakeit.UUID())

	matches, err := s.storage.ListMatches(ctx, alice)
	s.Require().NoError(err)
	s.Require().Empty(matches)

	first := s.fakeSummary(alice, bob)
	first.UpdatedAt = 100
	second := s.fakeSummary(alice)
	second.UpdatedAt = 200
	third := s.fakeSummary(bob)

	for _, summary := range []*protocol.MatchSummary{first, second, third} {
		s.Require().NoError(s.storage.SaveMatch(ctx, summary))
	}

	loaded, err := s.storage.LoadMatch(ctx, first.Seeds())
	s.Require().NoError(err)
	s.Require().Equal(first, loaded)

	_, err = s.storage.LoadMatch(ctx, s.FakeSeeds())
	s.Require().ErrorIs(err, ErrMatchNotFound)

	matches, err = s.storage.ListMatches(ctx, alice)
	s.Require().NoError(err)
	s.Require().Equal([]*protocol.MatchSummary{second, first}, matches)

	all, err := s.storage.ListMatches(ctx, "")
	s.Require().NoError(err)
	s.Require().Len(all, 3)
}

func (s *Suite) TestMatchUpsertKeepsCreatedAt() {
	ctx := context.Background()
	summary := s.fakeSummary(protocol.PlayerID(gofakeit.UUID()))
	s.Require().NoError(s.storage.SaveMatch(ctx, summary))

	update := *summary
	update.CreatedAt = summary.CreatedAt + 1000
	update.UpdatedAt = summary.UpdatedAt + 1000
	update.Success = !summary.Success
	s.Require().NoError(s.storage.SaveMatch(ctx, &update))

	loaded, err := s.storage.LoadMatch(ctx, summary.Seeds())
	s.Require().NoError(err)
	s.Require().Equal(summary.CreatedAt, loaded.CreatedAt)
	s.Require().Equal(update.UpdatedAt, loaded.UpdatedAt)
	s.Require().Equal(update.Success, loaded.Success)
}
