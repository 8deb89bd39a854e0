package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv"
)

// DiskStore keeps each key in its own file under a base directory
type DiskStore struct {
	d *diskv.Diskv
}

// NewDiskStore creates a store rooted at dir. Keys map to flat file names.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			TempDir:      filepath.Join(dir, ".tmp"),
			Transform:    flatTransform,
			CacheSizeMax: 1024 * 1024,
			FilePerm:     0600,
			PathPerm:     0750,
		}),
	}
}

func flatTransform(string) []string { return []string{} }

// Get reads the file for key
func (s *DiskStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := s.d.Read(key)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Put rewrites the file for key through a temp file, so readers never see a
// partial value
func (s *DiskStore) Put(_ context.Context, key string, value []byte) error {
	return s.d.Write(key, value)
}

// Ping checks the base directory is usable
func (s *DiskStore) Ping(_ context.Context) error {
	if err := os.MkdirAll(s.d.BasePath, 0750); err != nil {
		return fmt.Errorf("storage directory unavailable: %w", err)
	}
	return nil
}

// Close is a no-op; every Put is already on disk
func (s *DiskStore) Close() error {
	return nil
}
