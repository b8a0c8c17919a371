package testcommon

import (
	"encoding/json"
	"reflect"

	"github.com/brianvoe/gofakeit/v6"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/six78/crew-cli/internal/config"
	"github.com/six78/crew-cli/pkg/protocol"
)

type Suite struct {
	suite.Suite
	Logger *zap.Logger
}

func (s *Suite) SetupSuite() {
	s.Logger = SetupConfigLogger(s.T())
}

func (s *Suite) TearDownSuite() {
	_ = config.Logger.Sync()
}

// SplitBatch runs a batch command and returns the batched commands.
func (s *Suite) SplitBatch(batch tea.Cmd) []tea.Cmd {
	s.Require().Equal(reflect.Func, reflect.TypeOf(batch).Kind())

	result := batch()
	s.Require().NotNil(result)

	batchMessage, ok := result.(tea.BatchMsg)
	s.Require().True(ok)
	return batchMessage
}

func (s *Suite) FakePayload() ([]byte, []byte) {
	payload := make([]byte, 10)
	gofakeit.Slice(&payload)

	jsonPayload, err := json.Marshal(payload)
	s.Require().NoError(err)

	return payload, jsonPayload
}

func (s *Suite) FakeSeeds() protocol.Seeds {
	return protocol.Seeds{gofakeit.Uint32(), gofakeit.Uint32(), gofakeit.Uint32(), gofakeit.Uint32()}
}

// FakePlayers seats count players with fake names.
func (s *Suite) FakePlayers(server *protocol.ServerState, count int) []protocol.Occupant {
	occupants := make([]protocol.Occupant, 0, count)
	for i := 0; i < count; i++ {
		occupant := protocol.Occupant{
			ID:   protocol.PlayerID(gofakeit.UUID()),
			Name: gofakeit.Username(),
		}
		_, ok := server.TakeSeat(occupant)
		s.Require().True(ok)
		occupants = append(occupants, occupant)
	}
	return occupants
}
