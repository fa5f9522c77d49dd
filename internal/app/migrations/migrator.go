package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yigit/turmas/internal/pkg/dberrors"
)

//go:embed sql/*.sql
var files embed.FS

// Migration is one versioned schema file
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// Load returns the embedded migrations sorted by file name.
// The version is the file name prefix before the first underscore ("001_init.sql" => "001").
func Load() ([]Migration, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(files, path.Join("sql", name))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}
		migrations = append(migrations, Migration{
			Version: strings.Split(name, "_")[0],
			Name:    name,
			SQL:     string(content),
		})
	}
	return migrations, nil
}

// backend abstracts the two SQL drivers the migrator runs against
type backend interface {
	ensureTable(ctx context.Context) error
	isApplied(ctx context.Context, version string) (bool, error)
	apply(ctx context.Context, m Migration) error
}

// Migrator manages database migrations
type Migrator struct {
	backend backend
	logger  zerolog.Logger
}

// NewPostgresMigrator creates a migrator over a pgx pool
func NewPostgresMigrator(pool *pgxpool.Pool, lgr zerolog.Logger) *Migrator {
	return &Migrator{backend: &pgBackend{pool: pool}, logger: lgr}
}

// NewSQLMigrator creates a migrator over a database/sql handle using '?' placeholders
func NewSQLMigrator(db *sql.DB, lgr zerolog.Logger) *Migrator {
	return &Migrator{backend: &sqlBackend{db: db}, logger: lgr}
}

// Migrate applies every embedded migration that has not been recorded yet
func (m *Migrator) Migrate(ctx context.Context) error {
	if err := m.backend.ensureTable(ctx); err != nil {
		return err
	}

	migrations, err := Load()
	if err != nil {
		return err
	}

	for _, mig := range migrations {
		applied, err := m.backend.isApplied(ctx, mig.Version)
		if err != nil {
			return err
		}
		if applied {
			m.logger.Debug().Str("migration", mig.Name).Msg("Migration already applied, skipping")
			continue
		}
		if err := m.backend.apply(ctx, mig); err != nil {
			return fmt.Errorf("migration %s: %w", mig.Name, err)
		}
		m.logger.Info().Str("migration", mig.Name).Msg("Migration applied")
	}
	return nil
}

const createMigrationTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version VARCHAR(255) PRIMARY KEY,
	applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

type pgBackend struct {
	pool *pgxpool.Pool
}

func (b *pgBackend) ensureTable(ctx context.Context) error {
	if _, err := b.pool.Exec(ctx, createMigrationTable); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

func (b *pgBackend) isApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	err := b.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

func (b *pgBackend) apply(ctx context.Context, m Migration) error {
	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, m.SQL); err != nil {
		return fmt.Errorf("error occurred during SQL migration execution: %w", err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`, m.Version, time.Now()); err != nil {
		// another instance recorded the same version first
		if dberrors.IsDuplicateConstraintError(err, "schema_migrations_pkey") {
			return nil
		}
		return fmt.Errorf("failed to record migration: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type sqlBackend struct {
	db *sql.DB
}

func (b *sqlBackend) ensureTable(ctx context.Context) error {
	if _, err := b.db.ExecContext(ctx, createMigrationTable); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

func (b *sqlBackend) isApplied(ctx context.Context, version string) (bool, error) {
	var count int
	err := b.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM schema_migrations WHERE version = ?`, version).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return count > 0, nil
}

func (b *sqlBackend) apply(ctx context.Context, m Migration) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("error occurred during SQL migration execution: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)`, m.Version, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
