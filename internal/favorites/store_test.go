package favorites

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/amaumene/goflix/internal/models"
	"github.com/amaumene/goflix/internal/storage"
	"github.com/amaumene/goflix/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryKV is an in-memory storage.KV
type memoryKV struct {
	mu       sync.Mutex
	values   map[string][]byte
	failPuts bool
	failGets int // number of upcoming Gets that fail
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: map[string][]byte{}}
}

func (m *memoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGets > 0 {
		m.failGets--
		return nil, errors.New("connection reset")
	}
	v, ok := m.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *memoryKV) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPuts {
		return errors.New("disk full")
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *memoryKV) Ping(context.Context) error { return nil }
func (m *memoryKV) Close() error               { return nil }

func rating(f float64) *float64 { return &f }

var (
	alien = models.MediaItem{ID: 348, Kind: models.MediaTypeMovie, Title: "Alien", VoteAverage: rating(8.1), PosterPath: "/alien.jpg"}
	dark  = models.MediaItem{ID: 70523, Kind: models.MediaTypeTV, Name: "Dark", FirstAirDate: "2017-12-01"}
)

func TestListEmpty(t *testing.T) {
	store := NewStore(newMemoryKV(), utils.NewDiscardLogger())
	ctx := context.Background()

	assert.Empty(t, store.List(ctx))
	assert.False(t, store.Contains(ctx, alien.ID))
}

func TestToggleAddsThenRemoves(t *testing.T) {
	store := NewStore(newMemoryKV(), utils.NewDiscardLogger())
	ctx := context.Background()

	added, err := store.Toggle(ctx, alien)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, store.Contains(ctx, alien.ID))

	list := store.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, alien.ID, list[0].ID)
	assert.Equal(t, "Alien", list[0].Title)

	added, err = store.Toggle(ctx, alien)
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, store.Contains(ctx, alien.ID))
	assert.Empty(t, store.List(ctx))
}

func TestToggleAppendsInOrder(t *testing.T) {
	store := NewStore(newMemoryKV(), utils.NewDiscardLogger())
	ctx := context.Background()

	_, err := store.Toggle(ctx, alien)
	require.NoError(t, err)
	_, err = store.Toggle(ctx, dark)
	require.NoError(t, err)

	list := store.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, alien.ID, list[0].ID)
	assert.Equal(t, dark.ID, list[1].ID)
	assert.Equal(t, models.MediaTypeTV, list[1].Kind)
}

func TestToggleTwiceRestoresPersistedContent(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv, utils.NewDiscardLogger())
	ctx := context.Background()

	_, err := store.Toggle(ctx, dark)
	require.NoError(t, err)
	before, err := kv.Get(ctx, SlotKey)
	require.NoError(t, err)

	_, err = store.Toggle(ctx, alien)
	require.NoError(t, err)
	_, err = store.Toggle(ctx, alien)
	require.NoError(t, err)

	after, err := kv.Get(ctx, SlotKey)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestKindlessItemIsStoredStable(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv, utils.NewDiscardLogger())
	ctx := context.Background()
	heat := models.MediaItem{ID: 949, Title: "Heat"}

	_, err := store.Toggle(ctx, heat)
	require.NoError(t, err)
	before, err := kv.Get(ctx, SlotKey)
	require.NoError(t, err)
	assert.Contains(t, string(before), `"media_type":"movie"`)

	_, err = store.Toggle(ctx, dark)
	require.NoError(t, err)
	_, err = store.Toggle(ctx, dark)
	require.NoError(t, err)

	after, err := kv.Get(ctx, SlotKey)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestRemove(t *testing.T) {
	store := NewStore(newMemoryKV(), utils.NewDiscardLogger())
	ctx := context.Background()

	_, _ = store.Toggle(ctx, alien)
	_, _ = store.Toggle(ctx, dark)

	require.NoError(t, store.Remove(ctx, alien.ID))
	list := store.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, dark.ID, list[0].ID)

	require.NoError(t, store.Remove(ctx, 12345))
	assert.Len(t, store.List(ctx), 1)
}

func TestCorruptSlotIsEmpty(t *testing.T) {
	kv := newMemoryKV()
	kv.values[SlotKey] = []byte(`{not json`)
	store := NewStore(kv, utils.NewDiscardLogger())
	ctx := context.Background()

	assert.Empty(t, store.List(ctx))

	added, err := store.Toggle(ctx, alien)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Len(t, store.List(ctx), 1)
}

func TestWriteFailureLeavesListUnchanged(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv, utils.NewDiscardLogger())
	ctx := context.Background()

	_, err := store.Toggle(ctx, alien)
	require.NoError(t, err)

	kv.failPuts = true

	member, err := store.Toggle(ctx, dark)
	assert.Error(t, err)
	assert.False(t, member)

	member, err = store.Toggle(ctx, alien)
	assert.Error(t, err)
	assert.True(t, member)

	assert.Error(t, store.Remove(ctx, alien.ID))

	list := store.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, alien.ID, list[0].ID)
}

func TestReadFailureKeepsStoredList(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv, utils.NewDiscardLogger())
	ctx := context.Background()

	for _, item := range []models.MediaItem{alien, dark} {
		_, err := store.Toggle(ctx, item)
		require.NoError(t, err)
	}
	before := append([]byte(nil), kv.values[SlotKey]...)

	kv.failGets = 1
	member, err := store.Toggle(ctx, models.MediaItem{ID: 1, Kind: models.MediaTypeMovie, Title: "Heat"})
	assert.Error(t, err)
	assert.False(t, member)

	kv.failGets = 1
	assert.Error(t, store.Remove(ctx, alien.ID))

	kv.failGets = 1
	assert.Empty(t, store.List(ctx), "reads still degrade to empty")

	assert.Equal(t, before, kv.values[SlotKey])
	assert.Len(t, store.List(ctx), 2)
}

// Favorites are keyed by id alone, so a tv show sharing a movie's id
// replaces it instead of being added.
func TestIDCollisionAcrossKinds(t *testing.T) {
	store := NewStore(newMemoryKV(), utils.NewDiscardLogger())
	ctx := context.Background()

	movie := models.MediaItem{ID: 100, Kind: models.MediaTypeMovie, Title: "Movie 100"}
	show := models.MediaItem{ID: 100, Kind: models.MediaTypeTV, Name: "Show 100"}

	added, err := store.Toggle(ctx, movie)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.Toggle(ctx, show)
	require.NoError(t, err)
	assert.False(t, added, "same id toggles the existing record off")
	assert.Empty(t, store.List(ctx))
}

func TestConcurrentToggles(t *testing.T) {
	store := NewStore(newMemoryKV(), utils.NewDiscardLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, err := store.Toggle(ctx, models.MediaItem{ID: id, Kind: models.MediaTypeMovie})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.List(ctx), 20)
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goflix.db")
	ctx := context.Background()

	kv, err := storage.NewBoltStore(path)
	require.NoError(t, err)
	_, err = NewStore(kv, utils.NewDiscardLogger()).Toggle(ctx, dark)
	require.NoError(t, err)
	require.NoError(t, kv.Close())

	kv, err = storage.NewBoltStore(path)
	require.NoError(t, err)
	defer kv.Close()

	store := NewStore(kv, utils.NewDiscardLogger())
	assert.True(t, store.Contains(ctx, dark.ID))
	assert.Equal(t, "Dark", store.List(ctx)[0].MediaItem().DisplayTitle())
}
