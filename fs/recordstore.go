package fs

import (
	"context"
	"os"
	"path/filepath"
)

// RecordStore writes extraction records with atomic update semantics.
// Records are saved to a temporary directory, then moved atomically on Commit.
type RecordStore struct {
	baseDir string
	name    string
}

// NewRecordStore creates a new RecordStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewRecordStore(baseDir, name string) *RecordStore {
	return &RecordStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *RecordStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *RecordStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes rec under the temporary directory.
func (s *RecordStore) Save(ctx context.Context, rec *Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := RecordPath(rec.Source)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatRecord(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, content, 0644)
}

// Commit replaces the output directory with the saved records.
func (s *RecordStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// A run that saved nothing still produces an empty directory
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved records.
func (s *RecordStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
