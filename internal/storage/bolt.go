package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"
)

// slot is the bolthold record holding one value
type slot struct {
	Key       string `boltholdKey:"Key"`
	Value     []byte
	UpdatedAt time.Time
}

// BoltStore wraps a bolthold store
type BoltStore struct {
	store *bolthold.Store
}

// NewBoltStore opens (or creates) the database file at path
func NewBoltStore(path string) (*BoltStore, error) {
	store, err := bolthold.Open(path, 0600, &bolthold.Options{
		Options: &bbolt.Options{
			Timeout: 1 * time.Second,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &BoltStore{store: store}, nil
}

// Get retrieves the value stored under key
func (s *BoltStore) Get(_ context.Context, key string) ([]byte, error) {
	var rec slot
	err := s.store.Get(key, &rec)
	if errors.Is(err, bolthold.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.Value, nil
}

// Put replaces the value stored under key in a single transaction
func (s *BoltStore) Put(_ context.Context, key string, value []byte) error {
	rec := &slot{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return s.store.Upsert(key, rec)
}

// Ping checks the database is still open
func (s *BoltStore) Ping(_ context.Context) error {
	return s.store.Bolt().View(func(*bbolt.Tx) error { return nil })
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.store.Close()
}
