package repositories

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/turmas/internal/app/models"
)

// insertBatchSize bounds the rows per INSERT to stay below driver placeholder limits
const insertBatchSize = 500

// positionColumn keeps insertion order in the SQL tables
const positionColumn = "position"

// rowScanner is the subset of pgx.Rows and *sql.Rows used to read records
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func selectRecordsSQL(sb squirrel.StatementBuilderType, t recordTable) (string, []interface{}, error) {
	return sb.Select(t.columns...).From(t.table).OrderBy(positionColumn).ToSql()
}

func deleteRecordsSQL(sb squirrel.StatementBuilderType, t recordTable) (string, []interface{}, error) {
	return sb.Delete(t.table).ToSql()
}

// insertRecordsSQL builds the INSERT statements that write rows in order
func insertRecordsSQL(sb squirrel.StatementBuilderType, t recordTable, rows [][]string) ([]string, [][]interface{}, error) {
	columns := append([]string{positionColumn}, t.columns...)

	var (
		queries []string
		args    [][]interface{}
	)
	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))
		q := sb.Insert(t.table).Columns(columns...)
		for i := start; i < end; i++ {
			values := make([]interface{}, 0, len(columns))
			values = append(values, i)
			for _, f := range rows[i] {
				values = append(values, f)
			}
			q = q.Values(values...)
		}
		sql, a, err := q.ToSql()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build insert for %s: %w", t.table, err)
		}
		queries = append(queries, sql)
		args = append(args, a)
	}
	return queries, args, nil
}

// scanRecords reads every row of t into snap
func scanRecords(rows rowScanner, t recordTable, snap *models.Snapshot) error {
	fields := make([]string, len(t.columns))
	dest := make([]any, len(fields))
	for i := range fields {
		dest[i] = &fields[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("scan %s: %w", t.table, err)
		}
		record := make([]string, len(fields))
		copy(record, fields)
		t.put(snap, record)
	}
	return rows.Err()
}
