package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFavoritesInfersLegacyKind(t *testing.T) {
	data := `[{"id":1,"title":"Alien"},{"id":2,"name":"Dark"},{"id":3}]`

	records, err := DecodeFavorites([]byte(data))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, MediaTypeMovie, records[0].Kind)
	assert.Equal(t, MediaTypeTV, records[1].Kind)
	assert.Equal(t, MediaTypeTV, records[2].Kind)
}

func TestDecodeFavoritesCorrupt(t *testing.T) {
	for _, data := range []string{`{`, `{"id":1}`, `"favorites"`} {
		_, err := DecodeFavorites([]byte(data))
		assert.ErrorIs(t, err, ErrCorrupt, "input %q", data)
	}
}

func TestFavoritesRoundTrip(t *testing.T) {
	records := []FavoriteRecord{
		NewFavoriteRecord(MediaItem{ID: 1, Kind: MediaTypeMovie, Title: "Alien", VoteAverage: ptr(8.5)}),
		NewFavoriteRecord(MediaItem{ID: 2, Kind: MediaTypeTV, Name: "Dark", PosterPath: "/d.jpg"}),
	}

	data, err := EncodeFavorites(records)
	require.NoError(t, err)

	decoded, err := DecodeFavorites(data)
	require.NoError(t, err)
	assert.Equal(t, records, decoded)

	again, err := EncodeFavorites(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestEncodeFavoritesEmpty(t *testing.T) {
	data, err := EncodeFavorites(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestNewFavoriteRecordResolvesKind(t *testing.T) {
	movie := NewFavoriteRecord(MediaItem{ID: 1, Title: "Alien", ReleaseDate: "1979-05-25"})
	assert.Equal(t, MediaTypeMovie, movie.Kind)

	show := NewFavoriteRecord(MediaItem{ID: 2, Name: "Dark"})
	assert.Equal(t, MediaTypeTV, show.Kind)

	bare := NewFavoriteRecord(MediaItem{ID: 3})
	assert.Equal(t, MediaTypeTV, bare.Kind)

	crossed := NewFavoriteRecord(MediaItem{ID: 4, Kind: MediaTypeTV, Title: "Tagged tv", ReleaseDate: "2020-01-01"})
	assert.Equal(t, "Tagged tv", crossed.Name)
	assert.Equal(t, "2020-01-01", crossed.FirstAirDate)
	assert.Empty(t, crossed.Title)

	records := []FavoriteRecord{movie, show, bare, crossed}
	data, err := EncodeFavorites(records)
	require.NoError(t, err)
	decoded, err := DecodeFavorites(data)
	require.NoError(t, err)
	assert.Equal(t, records, decoded, "stored records read back unchanged")
}
