package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"

	"github.com/yigit/turmas/internal/app/models"
)

// SQLiteStore keeps the ledger in an SQLite database file.
type SQLiteStore struct {
	db     *sql.DB
	sb     squirrel.StatementBuilderType
	logger zerolog.Logger
}

var _ SnapshotStore = (*SQLiteStore)(nil)

// NewSQLiteStore creates an SQLiteStore. The schema must already be migrated.
func NewSQLiteStore(conn *sql.DB, lgr zerolog.Logger) *SQLiteStore {
	return &SQLiteStore{
		db:     conn,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		logger: lgr,
	}
}

// Load reads all tables inside one transaction
func (s *SQLiteStore) Load(ctx context.Context) (*models.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	snap := models.NewSnapshot()
	for _, t := range recordTables {
		if err := s.loadTable(ctx, tx, t, snap); err != nil {
			s.logger.Error().Err(err).Str("table", t.table).Msg("Error loading snapshot")
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
	}
	return snap, nil
}

func (s *SQLiteStore) loadTable(ctx context.Context, tx *sql.Tx, t recordTable, snap *models.Snapshot) error {
	query, args, err := selectRecordsSQL(s.sb, t)
	if err != nil {
		return fmt.Errorf("failed to build select for %s: %w", t.table, err)
	}
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query %s: %w", t.table, err)
	}
	defer func() { _ = rows.Close() }()
	return scanRecords(rows, t, snap)
}

// Save replaces the content of every table in a single transaction
func (s *SQLiteStore) Save(ctx context.Context, snap *models.Snapshot) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
			s.logger.Error().Err(retErr).Msg("Error saving snapshot")
		}
	}()

	for _, t := range recordTables {
		del, args, err := deleteRecordsSQL(s.sb, t)
		if err != nil {
			return fmt.Errorf("failed to build delete for %s: %w", t.table, err)
		}
		if _, err := tx.ExecContext(ctx, del, args...); err != nil {
			return fmt.Errorf("clear %s: %w", t.table, err)
		}

		queries, batches, err := insertRecordsSQL(s.sb, t, t.rows(snap))
		if err != nil {
			return err
		}
		for i, q := range queries {
			if _, err := tx.ExecContext(ctx, q, batches[i]...); err != nil {
				return fmt.Errorf("insert %s: %w", t.table, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
