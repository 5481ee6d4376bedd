// internal/workdir/workdir.go
// Package workdir manages the per-run directory holding batch files and
// job outputs.
package workdir

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// New creates a uniquely named run directory under parent. An empty parent
// falls back to the system temp directory.
func New(parent string) (string, error) {
	if parent == "" {
		parent = os.TempDir()
	}
	dir := filepath.Join(parent, "parablast-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Cleanup removes the run directory unless keep is set. Removal failures
// are logged, not fatal: the artifact is already written by the time this
// runs.
func Cleanup(log *slog.Logger, dir string, keep bool) {
	if keep {
		log.Info("keeping intermediates", "dir", dir)
		return
	}
	if err := os.RemoveAll(dir); err != nil {
		log.Warn("cleanup failed", "dir", dir, "err", err)
	}
}
