package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/tui-overworld/internal/core"
)

// DefaultSnapshotDir returns ~/.overworld/screenshots, or "" if home is unavailable.
func DefaultSnapshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".overworld", "screenshots")
}

// WriteSnapshot saves the surface as a PNG at path, enlarged scale times.
// Parent directories are created as needed.
func WriteSnapshot(path string, s *core.Surface, scale int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create snapshot directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create snapshot: %w", err)
	}
	if err := s.Scaled(scale).WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	return f.Close()
}

// snapshotPath generates a timestamped file name in dir.
func snapshotPath(dir, worldID string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", worldID, now.Format("20060102_150405")))
}
