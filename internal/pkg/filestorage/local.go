package filestorage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yigit/turmas/internal/pkg/logger"
)

// maxLineSize bounds a single record line
const maxLineSize = 1 << 20

// LocalStorage keeps line files in a directory on the local filesystem.
type LocalStorage struct {
	basePath string
}

var _ LineStorage = (*LocalStorage)(nil)

// NewLocalStorage creates a new LocalStorage rooted at basePath, creating the
// directory when needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Debug().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// GetFullPath returns the full filesystem path for name
func (ls *LocalStorage) GetFullPath(name string) string {
	return filepath.Join(ls.basePath, filepath.Base(name))
}

// ReadLines reads every line of name. A file that does not exist reads as empty.
func (ls *LocalStorage) ReadLines(name string) ([]string, error) {
	path := ls.GetFullPath(name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// WriteLines rewrites name in full. The content goes to a temporary file in the
// same directory which is then renamed over the target.
func (ls *LocalStorage) WriteLines(name string, lines []string) (retErr error) {
	path := ls.GetFullPath(name)
	tmp, err := os.CreateTemp(ls.basePath, "."+filepath.Base(name)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	defer func() {
		if retErr != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	logger.Debug().Str("path", path).Int("lines", len(lines)).Msg("File rewritten")
	return nil
}
