package favorites

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/amaumene/goflix/internal/metrics"
	"github.com/amaumene/goflix/internal/models"
	"github.com/amaumene/goflix/internal/storage"
	"github.com/sirupsen/logrus"
)

// SlotKey is the storage key holding the favorites list
const SlotKey = "favorites"

// Store is the device-local favorites list. Every mutation reads the whole
// list, changes it and writes it back before returning. The mutex serializes
// mutations inside this process; separate processes sharing a slot race with
// last-writer-wins.
type Store struct {
	kv     storage.KV
	mu     sync.Mutex
	logger *logrus.Logger
}

// NewStore creates a favorites store on kv
func NewStore(kv storage.KV, logger *logrus.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger,
	}
}

// List returns the favorites in the order they were added. A missing or
// unreadable slot is an empty list.
func (s *Store) List(ctx context.Context) []models.FavoriteRecord {
	records, _ := s.load(ctx)
	return records
}

// Contains reports whether an item with id is a favorite
func (s *Store) Contains(ctx context.Context, id int) bool {
	records, _ := s.load(ctx)
	return indexOf(records, id) >= 0
}

// Toggle removes item if a favorite with its id exists, otherwise appends it.
// It returns the new membership. On a write error the stored list is
// unchanged and the previous membership is returned. When the slot cannot be
// read nothing is written and the membership is reported as false.
func (s *Store) Toggle(ctx context.Context, item models.MediaItem) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	if i := indexOf(records, item.ID); i >= 0 {
		if err := s.save(ctx, removeAt(records, i)); err != nil {
			return true, err
		}
		s.logger.WithField("id", item.ID).Debug("Removed favorite")
		metrics.FavoritesToggles.WithLabelValues("removed").Inc()
		return false, nil
	}

	records = append(records, models.NewFavoriteRecord(item))
	if err := s.save(ctx, records); err != nil {
		return false, err
	}
	s.logger.WithFields(logrus.Fields{
		"id":    item.ID,
		"kind":  item.Kind,
		"title": item.DisplayTitle(),
	}).Debug("Added favorite")
	metrics.FavoritesToggles.WithLabelValues("added").Inc()
	return true, nil
}

// Remove deletes the favorite with id. Removing an id that is not a favorite
// still rewrites the list. An unreadable slot is left untouched.
func (s *Store) Remove(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return err
	}
	if i := indexOf(records, id); i >= 0 {
		records = removeAt(records, i)
	}
	return s.save(ctx, records)
}

// load reads the list. A missing or corrupt slot is an empty list; any
// other read failure is returned alongside an empty list so mutations can
// refuse to overwrite data they never saw.
func (s *Store) load(ctx context.Context) ([]models.FavoriteRecord, error) {
	data, err := s.kv.Get(ctx, SlotKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.FavoriteRecord{}, nil
	}
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read favorites")
		return []models.FavoriteRecord{}, fmt.Errorf("failed to read favorites: %w", err)
	}

	records, err := models.DecodeFavorites(data)
	if err != nil {
		s.logger.WithError(err).Warn("Stored favorites are corrupt, treating as empty")
		return []models.FavoriteRecord{}, nil
	}
	return records, nil
}

func (s *Store) save(ctx context.Context, records []models.FavoriteRecord) error {
	data, err := models.EncodeFavorites(records)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := s.kv.Put(ctx, SlotKey, data); err != nil {
		s.logger.WithError(err).Error("Failed to write favorites")
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	return nil
}

func indexOf(records []models.FavoriteRecord, id int) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func removeAt(records []models.FavoriteRecord, i int) []models.FavoriteRecord {
	out := make([]models.FavoriteRecord, 0, len(records)-1)
	out = append(out, records[:i]...)
	return append(out, records[i+1:]...)
}
