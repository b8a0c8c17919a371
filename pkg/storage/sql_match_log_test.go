package storage

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"

	"github.com/six78/crew-cli/internal/testcommon"
	"github.com/six78/crew-cli/pkg/protocol"
)

func TestSQLMatchLog(t *testing.T) {
	suite.Run(t, &SQLSuite{})
}

type SQLSuite struct {
	testcommon.Suite
	db   *sql.DB
	mock sqlmock.Sqlmock
	log  *SQLMatchLog
}

var matchColumns = []string{
	"seed1", "seed2", "seed3", "seed4", "success", "completed", "undo_used",
	"meta", "moves", "players", "created_at", "updated_at",
}

func (s *SQLSuite) SetupTest() {
	var err error
	s.db, s.mock, err = sqlmock.New()
	s.Require().NoError(err)
	s.log = NewSQLMatchLog(s.db, s.Logger)
}

func (s *SQLSuite) TearDownTest() {
	s.mock.ExpectClose()
	s.Require().NoError(s.log.Close())
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *SQLSuite) fakeSummary() *protocol.MatchSummary {
	id := protocol.PlayerID(gofakeit.UUID())
	summary := &protocol.MatchSummary{
		Success:   gofakeit.Bool(),
		Completed: gofakeit.Bool(),
		UndoUsed:  gofakeit.Bool(),
		Meta:      protocol.Meta{Target: gofakeit.Number(1, 30)},
		CreatedAt: gofakeit.Int64(),
		UpdatedAt: gofakeit.Int64(),
		Moves:     []string{protocol.PassMove(id).String()},
		Players: map[protocol.PlayerID]protocol.MatchParticipant{
			id: {Seat: protocol.Seats[0], Name: gofakeit.Username()},
		},
	}
	summary.SetSeeds(s.FakeSeeds())
	return summary
}

func (s *SQLSuite) summaryRow(rows *sqlmock.Rows, summary *protocol.MatchSummary) *sqlmock.Rows {
	meta, moves, players, err := encodeMatchColumns(summary)
	s.Require().NoError(err)
	return rows.AddRow(
		summary.Seed1, summary.Seed2, summary.Seed3, summary.Seed4,
		summary.Success, summary.Completed, summary.UndoUsed,
		[]byte(meta), []byte(moves), []byte(players),
		summary.CreatedAt, summary.UpdatedAt,
	)
}

func (s *SQLSuite) TestMigrate() {
	s.mock.ExpectExec(regexp.QuoteMeta(createMatchesTable)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.Require().NoError(s.log.Migrate(context.Background()))
}

func (s *SQLSuite) TestSaveMatch() {
	summary := s.fakeSummary()
	meta, moves, players, err := encodeMatchColumns(summary)
	s.Require().NoError(err)

	s.mock.ExpectExec(regexp.QuoteMeta(upsertMatch)).
		WithArgs(
			summary.Seed1, summary.Seed2, summary.Seed3, summary.Seed4,
			summary.Success, summary.Completed, summary.UndoUsed,
			meta, moves, players,
			summary.CreatedAt, summary.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.Require().NoError(s.log.SaveMatch(context.Background(), summary))
}

func (s *SQLSuite) TestSaveMatchEncodesEmptyMoves() {
	summary := s.fakeSummary()
	summary.Moves = nil

	s.mock.ExpectExec(regexp.QuoteMeta(upsertMatch)).
		WithArgs(
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), "[]", sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.Require().NoError(s.log.SaveMatch(context.Background(), summary))
}

func (s *SQLSuite) TestSaveMatchFailure() {
	summary := s.fakeSummary()
	s.mock.ExpectExec(regexp.QuoteMeta(upsertMatch)).
		WillReturnError(sql.ErrConnDone)

	err := s.log.SaveMatch(context.Background(), summary)
	s.Require().ErrorIs(err, sql.ErrConnDone)
}

func (s *SQLSuite) TestLoadMatch() {
	summary := s.fakeSummary()
	seeds := summary.Seeds()

	s.mock.ExpectQuery(regexp.QuoteMeta(selectMatchBySeeds)).
		WithArgs(seeds[0], seeds[1], seeds[2], seeds[3]).
		WillReturnRows(s.summaryRow(sqlmock.NewRows(matchColumns), summary))

	loaded, err := s.log.LoadMatch(context.Background(), seeds)
	s.Require().NoError(err)
	s.Require().Equal(summary, loaded)
}

func (s *SQLSuite) TestLoadMatchNotFound() {
	seeds := s.FakeSeeds()
	s.mock.ExpectQuery(regexp.QuoteMeta(selectMatchBySeeds)).
		WithArgs(seeds[0], seeds[1], seeds[2], seeds[3]).
		WillReturnRows(sqlmock.NewRows(matchColumns))

	_, err := s.log.LoadMatch(context.Background(), seeds)
	s.Require().ErrorIs(err, ErrMatchNotFound)
}

func (s *SQLSuite) TestListMatches() {
	first := s.fakeSummary()
	second := s.fakeSummary()
	playerID := protocol.PlayerID("alice")

	rows := sqlmock.NewRows(matchColumns)
	s.summaryRow(rows, first)
	s.summaryRow(rows, second)

	s.mock.ExpectQuery(regexp.QuoteMeta(selectMatchesByPlayer)).
		WithArgs(`$."alice"`).
		WillReturnRows(rows)

	matches, err := s.log.ListMatches(context.Background(), playerID)
	s.Require().NoError(err)
	s.Require().Equal([]*protocol.MatchSummary{first, second}, matches)
}

func (s *SQLSuite) TestListMatchesEmpty() {
	s.mock.ExpectQuery(regexp.QuoteMeta(selectMatchesByPlayer)).
		WillReturnRows(sqlmock.NewRows(matchColumns))

	matches, err := s.log.ListMatches(context.Background(), protocol.PlayerID(gofakeit.UUID()))
	s.Require().NoError(err)
	s.Require().NotNil(matches)
	s.Require().Empty(matches)
}
