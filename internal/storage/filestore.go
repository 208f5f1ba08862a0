package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	apperrors "wanderlog/internal/errors"
)

// FileStore persists uploaded files by name.
type FileStore interface {
	Save(ctx context.Context, name string, r io.Reader) error
	Remove(ctx context.Context, name string) error
}

// DiskStore implements FileStore on a local directory. Concurrent writers to
// distinct names are safe; the filesystem provides atomic create and delete.
type DiskStore struct {
	dir string
}

// NewDiskStore ensures the directory exists and returns a store over it.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes the reader's contents under name.
func (s *DiskStore) Save(ctx context.Context, name string, r io.Reader) error {
	dst, err := os.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Remove deletes the named file. A missing file is reported as
// ErrFileNotFound so a repeated delete fails rather than silently succeeding.
func (s *DiskStore) Remove(ctx context.Context, name string) error {
	p := s.path(name)
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return apperrors.ErrFileNotFound
		}
		return fmt.Errorf("stat file: %w", err)
	}
	if err := os.Remove(p); err != nil {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// path joins name onto the store directory, discarding any directory
// components a caller-supplied name might carry.
func (s *DiskStore) path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}
