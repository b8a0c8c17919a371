package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/crew-cli/pkg/protocol"
)

const createMatchesTable = `CREATE TABLE IF NOT EXISTS mission_logs (
	seed1 INT UNSIGNED NOT NULL,
	seed2 INT UNSIGNED NOT NULL,
	seed3 INT UNSIGNED NOT NULL,
	seed4 INT UNSIGNED NOT NULL,
	success BOOLEAN NOT NULL,
	completed BOOLEAN NOT NULL,
	undo_used BOOLEAN NOT NULL,
	meta JSON NOT NULL,
	moves JSON NOT NULL,
	players JSON NOT NULL,
	created_at BIGINT NOT NULL,
	updated_at BIGINT NOT NULL,
	PRIMARY KEY (seed1, seed2, seed3, seed4)
)`

const upsertMatch = `INSERT INTO mission_logs
	(seed1, seed2, seed3, seed4, success, completed, undo_used, meta, moves, players, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
	success = VALUES(success),
	completed = VALUES(completed),
	undo_used = VALUES(undo_used),
	meta = VALUES(meta),
	moves = VALUES(moves),
	players = VALUES(players),
	updated_at = VALUES(updated_at)`

const selectMatches = `SELECT seed1, seed2, seed3, seed4, success, completed, undo_used,
	meta, moves, players, created_at, updated_at FROM mission_logs`

const selectMatchBySeeds = selectMatches + ` WHERE seed1 = ? AND seed2 = ? AND seed3 = ? AND seed4 = ?`

const selectMatchesByPlayer = selectMatches + ` WHERE JSON_CONTAINS_PATH(players, 'one', ?) ORDER BY updated_at DESC`

// SQLMatchLog stores match summaries in MySQL, one row per deal.
type SQLMatchLog struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSQLMatchLog(db *sql.DB, logger *zap.Logger) *SQLMatchLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLMatchLog{
		db:     db,
		logger: logger.Named("matchlog"),
	}
}

func OpenSQLMatchLog(ctx context.Context, dsn string, logger *zap.Logger) (*SQLMatchLog, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse mysql dsn")
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mysql connector")
	}

	log := NewSQLMatchLog(sql.OpenDB(connector), logger)
	err = log.Migrate(ctx)
	if err != nil {
		_ = log.Close()
		return nil, err
	}
	return log, nil
}

func (l *SQLMatchLog) Close() error {
	return l.db.Close()
}

func (l *SQLMatchLog) Migrate(ctx context.Context) error {
	_, err := l.db.ExecContext(ctx, createMatchesTable)
	return errors.Wrap(err, "failed to create mission_logs table")
}

func (l *SQLMatchLog) SaveMatch(ctx context.Context, summary *protocol.MatchSummary) error {
	meta, moves, players, err := encodeMatchColumns(summary)
	if err != nil {
		return err
	}

	_, err = l.db.ExecContext(ctx, upsertMatch,
		summary.Seed1, summary.Seed2, summary.Seed3, summary.Seed4,
		summary.Success, summary.Completed, summary.UndoUsed,
		meta, moves, players,
		summary.CreatedAt, summary.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "failed to save match summary")
	}

	l.logger.Debug("match saved",
		zap.Stringer("seeds", summary.Seeds()),
		zap.Bool("success", summary.Success))
	return nil
}

func (l *SQLMatchLog) LoadMatch(ctx context.Context, seeds protocol.Seeds) (*protocol.MatchSummary, error) {
	row := l.db.QueryRowContext(ctx, selectMatchBySeeds, seeds[0], seeds[1], seeds[2], seeds[3])
	summary, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrap(ErrMatchNotFound, seeds.String())
	}
	return summary, err
}

func (l *SQLMatchLog) ListMatches(ctx context.Context, playerID protocol.PlayerID) ([]*protocol.MatchSummary, error) {
	rows, err := l.db.QueryContext(ctx, selectMatchesByPlayer, playerPath(playerID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to query match summaries")
	}
	defer rows.Close()

	result := []*protocol.MatchSummary{}
	for rows.Next() {
		summary, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, summary)
	}
	return result, errors.Wrap(rows.Err(), "failed to read match summaries")
}

// playerPath is the JSON path of the player key in the players column.
func playerPath(playerID protocol.PlayerID) string {
	return fmt.Sprintf("$.%q", string(playerID))
}

func encodeMatchColumns(summary *protocol.MatchSummary) (string, string, string, error) {
	meta, err := json.Marshal(summary.Meta)
	if err != nil {
		return "", "", "", errors.Wrap(err, "failed to marshal meta")
	}
	moves := summary.Moves
	if moves == nil {
		moves = []string{}
	}
	movesJson, err := json.Marshal(moves)
	if err != nil {
		return "", "", "", errors.Wrap(err, "failed to marshal moves")
	}
	players, err := json.Marshal(summary.Players)
	if err != nil {
		return "", "", "", errors.Wrap(err, "failed to marshal players")
	}
	return string(meta), string(movesJson), string(players), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (*protocol.MatchSummary, error) {
	var summary protocol.MatchSummary
	var meta, moves, players []byte

	err := row.Scan(
		&summary.Seed1, &summary.Seed2, &summary.Seed3, &summary.Seed4,
		&summary.Success, &summary.Completed, &summary.UndoUsed,
		&meta, &moves, &players,
		&summary.CreatedAt, &summary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(meta, &summary.Meta); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal meta")
	}
	if err = json.Unmarshal(moves, &summary.Moves); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal moves")
	}
	if err = json.Unmarshal(players, &summary.Players); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal players")
	}
	return &summary, nil
}
