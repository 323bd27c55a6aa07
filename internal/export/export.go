// Package export writes a YAML snapshot of scan findings to disk.
//
// Snapshots are written under an exclusive flock held on "<path>.lock" and
// land via temp file + rename, so a reader never sees a partial file.
// The scanned source file is never touched.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/AhmedTyson/accountscan/internal/scanner"
)

// Snapshot is one scan's findings as written to disk.
type Snapshot struct {
	RunID     string            `yaml:"run_id"`
	Target    string            `yaml:"target"`
	Lines     int               `yaml:"lines"`
	Positions scanner.Positions `yaml:"positions"`
}

// NewSnapshot captures the findings for src under a fresh run ID.
func NewSnapshot(src *scanner.Source, pos scanner.Positions) Snapshot {
	return Snapshot{
		RunID:     uuid.New().String(),
		Target:    src.Path,
		Lines:     len(src.Lines),
		Positions: pos,
	}
}

// Write marshals snap to YAML and writes it to path while holding path+".lock".
func Write(path string, snap Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", path, err)
	}
	defer lock.Unlock()

	return atomicWrite(path, data)
}

// atomicWrite writes data to a temp file in the target's directory and renames it into place.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	committed = true
	return nil
}
