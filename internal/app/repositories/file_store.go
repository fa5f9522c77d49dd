package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/pkg/filestorage"
)

// FileStore keeps each collection in its own line file, one pipe-delimited
// record per line. Lines with the wrong field count are skipped on load.
type FileStore struct {
	storage filestorage.LineStorage
	logger  zerolog.Logger
}

var _ SnapshotStore = (*FileStore)(nil)

// NewFileStore creates a FileStore over the given line storage
func NewFileStore(storage filestorage.LineStorage, lgr zerolog.Logger) *FileStore {
	return &FileStore{storage: storage, logger: lgr}
}

// Load reads the five collection files concurrently and assembles a snapshot
func (s *FileStore) Load(ctx context.Context) (*models.Snapshot, error) {
	lines := make([][]string, len(recordTables))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range recordTables {
		i, t := i, t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			l, err := s.storage.ReadLines(t.file)
			if err != nil {
				return fmt.Errorf("load %s: %w", t.entity, err)
			}
			lines[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := models.NewSnapshot()
	for i, t := range recordTables {
		skipped := 0
		for _, line := range lines[i] {
			fields, ok := decodeLine(line, len(t.columns))
			if !ok {
				if strings.TrimSpace(line) != "" {
					skipped++
				}
				continue
			}
			t.put(snap, fields)
		}
		if skipped > 0 {
			s.logger.Debug().Str("file", t.file).Int("skipped", skipped).Msg("Skipped malformed lines")
		}
	}
	return snap, nil
}

// Save rewrites every collection file in full. Files are replaced one after
// another, so a crash between two files leaves them at different versions.
func (s *FileStore) Save(ctx context.Context, snap *models.Snapshot) error {
	for _, t := range recordTables {
		if err := ctx.Err(); err != nil {
			return err
		}
		rows := t.rows(snap)
		out := make([]string, 0, len(rows))
		for _, row := range rows {
			out = append(out, encodeLine(row))
		}
		if err := s.storage.WriteLines(t.file, out); err != nil {
			return fmt.Errorf("save %s: %w", t.entity, err)
		}
	}
	return nil
}
