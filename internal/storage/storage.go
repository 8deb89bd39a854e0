// Package storage provides the durable key-value slots behind the favorites
// list. Each backend treats a value as one opaque blob that is read and
// replaced whole.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/amaumene/goflix/internal/config"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned by Get when a key has never been written
var ErrNotFound = errors.New("key not found")

// KV is a durable key-value store of whole values
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// Open creates the backend selected by the configuration
func Open(cfg *config.Config, logger *logrus.Logger) (KV, error) {
	logger.WithField("backend", cfg.StorageBackend).Debug("Opening storage")

	switch cfg.StorageBackend {
	case config.BackendBolt:
		return NewBoltStore(cfg.DatabaseFile)
	case config.BackendRedis:
		return NewRedisStoreFromURL(cfg.RedisURL)
	case config.BackendDisk:
		return NewDiskStore(cfg.DiskDir), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
