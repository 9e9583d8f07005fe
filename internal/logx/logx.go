package logx

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"mxmodeler/internal/paths"
)

// New creates a logger that writes to a timestamped file inside the user's
// logs directory. The returned closer should be closed when logging is no
// longer needed.
func New(p paths.UserPaths) (*log.Logger, io.Closer, error) {
	if err := p.EnsureLogsDir(); err != nil {
		return nil, nil, fmt.Errorf("ensure logs directory: %w", err)
	}

	now := time.Now()
	pruneErr := prune(p.LogsDir, now.Add(-Retention))

	filename := now.Format("20060102-150405") + ".log"
	filePath := filepath.Join(p.LogsDir, filename)
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.New(file, "", log.LstdFlags|log.Lmicroseconds)
	if pruneErr != nil {
		logger.Printf("prune old logs: %v", pruneErr)
	}
	return logger, file, nil
}

// Retention is how long run logs are kept. Older ones are removed when the
// next logger is created.
const Retention = 14 * 24 * time.Hour

func prune(dir string, cutoff time.Time) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Discard returns a logger that drops everything. Runs fall back to it when
// the log file cannot be opened.
func Discard() (*log.Logger, io.Closer) {
	return log.New(io.Discard, "", 0), nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
