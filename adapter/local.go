package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Local implements Adapter using the local file system.
// Keys map to file paths relative to the root directory.
type Local struct {
	root string
}

// NewLocal creates a new Local adapter rooted at the given directory.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

func (l *Local) path(key string) string {
	return filepath.Join(l.root, filepath.FromSlash(key))
}

// Save persists the record atomically via a temp file and rename.
func (l *Local) Save(_ context.Context, rec *Record) (bool, error) {
	path := l.path(rec.Key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".filevault-*.tmp")
	if err != nil {
		return false, err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(rec.Content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return false, err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return false, err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return false, err
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return false, fmt.Errorf("rename %s: %w", rec.Key, err)
	}
	return true, nil
}

// Load returns the record stored under key.
// os.ReadFile surfaces os.ErrNotExist for absent files, which already
// satisfies errors.Is(err, ErrNotFound).
func (l *Local) Load(_ context.Context, key string) (*Record, error) {
	data, err := os.ReadFile(l.path(key))
	if err != nil {
		return nil, err
	}
	return &Record{Key: key, Content: data}, nil
}

// Init constructs a new, empty record bound to key. No file is created
// until the record is saved.
func (l *Local) Init(_ context.Context, key string, _ bool) (*Record, error) {
	return &Record{Key: key}, nil
}

// Delete removes the file stored under key.
func (l *Local) Delete(_ context.Context, key string) (bool, error) {
	if err := os.Remove(l.path(key)); err != nil {
		return false, err
	}
	return true, nil
}
