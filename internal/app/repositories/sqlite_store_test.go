package repositories

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/turmas/internal/app/migrations"
	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/db"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()
	conn, err := db.NewSQLiteDB(ctx, filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, migrations.NewSQLMigrator(conn, zerolog.Nop()).Migrate(ctx))
	return NewSQLiteStore(conn, zerolog.Nop())
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	empty, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	want := sampleSnapshot()
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.SectionID{"s2", "s1"}, got.Sections.Keys())
	assert.Equal(t, want.Students.Values(), got.Students.Values())
	assert.Equal(t, want.Offerings.Values(), got.Offerings.Values())
	assert.Equal(t, want.Enrollments.Values(), got.Enrollments.Values())

	// a second save replaces rather than appends
	want.Enrollments.Delete("m1")
	want.Sections.Set("s3", models.Section{ID: "s3", Name: "Gamma"})
	require.NoError(t, store.Save(ctx, want))

	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Enrollments.Len())
	assert.Equal(t, []models.SectionID{"s2", "s1", "s3"}, got.Sections.Keys())
}

func TestSQLiteStoreLargeCollectionIsBatched(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	snap := models.NewSnapshot()
	for i := 0; i < insertBatchSize*2+7; i++ {
		id := models.StudentID(fmt.Sprintf("st-%04d", i))
		snap.Students.Set(id, models.Student{ID: id, RegistrationNumber: strconv.Itoa(i), Name: "n", Phone: "p"})
	}
	require.NoError(t, store.Save(ctx, snap))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.Students.Keys(), got.Students.Keys())
}

func TestPostgresStatementsUseDollarPlaceholders(t *testing.T) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	offerings := recordTables[3]

	query, _, err := selectRecordsSQL(sb, offerings)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, section_id, catalog_id, professor FROM offerings ORDER BY position", query)

	queries, args, err := insertRecordsSQL(sb, offerings, offerings.rows(sampleSnapshot()))
	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.Equal(t, "INSERT INTO offerings (position,id,section_id,catalog_id,professor) VALUES ($1,$2,$3,$4,$5)", queries[0])
	assert.Equal(t, []interface{}{0, "o1", "s1", "c1", "Dr. Lima"}, args[0])

	queries, _, err = insertRecordsSQL(sb, offerings, nil)
	require.NoError(t, err)
	assert.Empty(t, queries, "empty tables are only cleared")
}
