package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/db"
	"github.com/yigit/turmas/internal/pkg/dberrors"
)

// PostgresStore keeps the ledger in five PostgreSQL tables.
type PostgresStore struct {
	db     *db.PostgresDB
	sb     squirrel.StatementBuilderType
	logger zerolog.Logger
}

var _ SnapshotStore = (*PostgresStore)(nil)

// NewPostgresStore creates a PostgresStore. The schema must already be migrated.
func NewPostgresStore(database *db.PostgresDB, lgr zerolog.Logger) *PostgresStore {
	return &PostgresStore{
		db:     database,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		logger: lgr,
	}
}

// Load reads all tables inside one read-only repeatable-read transaction
func (s *PostgresStore) Load(ctx context.Context) (*models.Snapshot, error) {
	snap := models.NewSnapshot()
	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	err := s.db.WithTransaction(ctx, opts, func(ctx context.Context, tx pgx.Tx) error {
		for _, t := range recordTables {
			if err := s.loadTable(ctx, tx, t, snap); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if dberrors.IsUndefinedTable(err) {
			s.logger.Error().Err(err).Msg("Ledger tables are missing, migrations have not been applied")
		} else {
			s.logger.Error().Err(err).Msg("Error loading snapshot")
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return snap, nil
}

func (s *PostgresStore) loadTable(ctx context.Context, tx pgx.Tx, t recordTable, snap *models.Snapshot) error {
	query, args, err := selectRecordsSQL(s.sb, t)
	if err != nil {
		return fmt.Errorf("failed to build select for %s: %w", t.table, err)
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query %s: %w", t.table, err)
	}
	defer rows.Close()
	return scanRecords(rows, t, snap)
}

// Save replaces the content of every table in a single transaction
func (s *PostgresStore) Save(ctx context.Context, snap *models.Snapshot) error {
	err := s.db.WithTransaction(ctx, pgx.TxOptions{}, func(ctx context.Context, tx pgx.Tx) error {
		for _, t := range recordTables {
			del, args, err := deleteRecordsSQL(s.sb, t)
			if err != nil {
				return fmt.Errorf("failed to build delete for %s: %w", t.table, err)
			}
			if _, err := tx.Exec(ctx, del, args...); err != nil {
				return fmt.Errorf("clear %s: %w", t.table, err)
			}

			queries, batches, err := insertRecordsSQL(s.sb, t, t.rows(snap))
			if err != nil {
				return err
			}
			for i, q := range queries {
				if _, err := tx.Exec(ctx, q, batches[i]...); err != nil {
					return fmt.Errorf("insert %s: %w", t.table, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Error saving snapshot")
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
