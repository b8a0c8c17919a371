package update

import (
	"reflect"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"

	"github.com/six78/crew-cli/internal/testcommon"
)

func TestUpdateCommands(t *testing.T) {
	suite.Run(t, new(UpdateCommandsSuite))
}

type UpdateCommandsSuite struct {
	testcommon.Suite
}

func (s *UpdateCommandsSuite) TestEmpty() {
	update := NewUpdateCommands()
	s.Require().Nil(update.Batch())
}

func (s *UpdateCommandsSuite) TestAppendCommand() {
	sentMessage := gofakeit.LetterN(5)

	update := NewUpdateCommands()
	update.AppendCommand(func() tea.Msg {
		return sentMessage
	})

	batch := update.Batch()
	s.Require().NotNil(batch)
	s.Require().Equal(reflect.Func, reflect.TypeOf(batch).Kind())

	batchMessage := s.SplitBatch(batch)
	s.Require().Len(batchMessage, 1)
	s.Require().Equal(sentMessage, batchMessage[0]())
}

func (s *UpdateCommandsSuite) TestAppendMessage() {
	first := gofakeit.LetterN(5)
	second := gofakeit.LetterN(6)

	update := NewUpdateCommands()
	update.AppendMessage(first)
	update.AppendMessage(second)

	batchMessage := s.SplitBatch(update.Batch())
	s.Require().Len(batchMessage, 2)
	s.Require().Equal(first, batchMessage[0]())
	s.Require().Equal(second, batchMessage[1]())
}

func (s *UpdateCommandsSuite) TestNilCommandsSkipped() {
	update := NewUpdateCommands()
	update.AppendCommand(nil)
	update.AppendComponent(nil)
	s.Require().Zero(update.Len())
	s.Require().Nil(update.Batch())
}

func (s *UpdateCommandsSuite) TestComponentsFollowDirectCommands() {
	component := gofakeit.LetterN(5)
	first := gofakeit.LetterN(6)
	second := gofakeit.LetterN(7)

	update := NewUpdateCommands()
	update.AppendComponent(func() tea.Msg {
		return component
	})
	update.AppendMessage(first)
	update.AppendCommand(func() tea.Msg {
		return second
	})
	s.Require().Equal(3, update.Len())

	batchMessage := s.SplitBatch(update.Batch())
	s.Require().Len(batchMessage, 3)
	s.Require().Equal(first, batchMessage[0]())
	s.Require().Equal(second, batchMessage[1]())
	s.Require().Equal(component, batchMessage[2]())
}
