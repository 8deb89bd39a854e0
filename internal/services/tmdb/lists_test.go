package tmdb

import (
	"context"
	"net/http"
	"testing"

	"github.com/amaumene/goflix/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trendingPage2 = `{
	"page": 2,
	"results": [
		{"id": 10, "title": "First", "media_type": "movie", "vote_average": 7},
		{"id": 11, "title": "Second", "media_type": "movie"},
		{"id": 12, "name": "Odd One", "media_type": "tv"}
	],
	"total_pages": 40,
	"total_results": 800
}`

func TestFetchPageKeepsOrder(t *testing.T) {
	fake := newFakeTMDB(t, map[string]string{"/trending/movie/week": trendingPage2})
	client := newTestClient(t, fake.URL, 0)

	page := client.FetchPage(context.Background(), TrendingMovies(), 2)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 40, page.TotalPages)
	assert.Equal(t, 800, page.TotalResults)
	assert.True(t, page.HasMore())
	require.Len(t, page.Items, 3)
	assert.Equal(t, []int{10, 11, 12}, []int{page.Items[0].ID, page.Items[1].ID, page.Items[2].ID})
	assert.Equal(t, "7.0", models.FormatRating(page.Items[0].VoteAverage))
	assert.Equal(t, models.MediaTypeTV, page.Items[2].Kind, "explicit media_type is kept on unstamped listings")
}

func TestFetchPageTransportFailure(t *testing.T) {
	fake := newFakeTMDB(t, nil)
	client := newTestClient(t, fake.URL, 0)
	fake.Close()

	page := client.FetchPage(context.Background(), NowPlaying(), 3)

	assert.Equal(t, models.EmptyPage(3), page)
	assert.NotNil(t, page.Items)
	assert.False(t, page.HasMore())
}

func TestFetchPageBadStatus(t *testing.T) {
	fake := newFakeTMDB(t, map[string]string{"/movie/now_playing": `{"status_message":"Invalid API key"}`})
	fake.setStatus(http.StatusUnauthorized)
	client := newTestClient(t, fake.URL, 0)

	page := client.FetchPage(context.Background(), NowPlaying(), 5)

	assert.Equal(t, 5, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestFetchPageDecodeFailure(t *testing.T) {
	fake := newFakeTMDB(t, map[string]string{"/movie/now_playing": `not json`})
	client := newTestClient(t, fake.URL, 0)

	page := client.FetchPage(context.Background(), NowPlaying(), 1)

	assert.Equal(t, models.EmptyPage(1), page)
}

func TestFetchPageClampsPageNumber(t *testing.T) {
	fake := newFakeTMDB(t, map[string]string{"/movie/now_playing": `{"page":1,"results":[{"id":1,"title":"A"}],"total_pages":2}`})
	client := newTestClient(t, fake.URL, 0)

	page := client.FetchPage(context.Background(), NowPlaying(), 0)

	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Items, 1)
}

func TestFetchPageMissingTotalPages(t *testing.T) {
	fake := newFakeTMDB(t, map[string]string{"/movie/now_playing": `{"results":[{"id":1,"title":"A"}]}`})
	client := newTestClient(t, fake.URL, 0)

	page := client.FetchPage(context.Background(), NowPlaying(), 4)

	assert.Equal(t, 4, page.TotalPages)
	assert.False(t, page.HasMore())
}

func TestRecommendationsAreStamped(t *testing.T) {
	fake := newFakeTMDB(t, map[string]string{
		"/tv/1396/recommendations": `{"page":1,"results":[
			{"id":1,"name":"Better Call Saul","first_air_date":"2015-02-08"},
			{"id":2,"title":"El Camino","release_date":"2019-10-11","media_type":"movie"}
		],"total_pages":1}`,
	})
	client := newTestClient(t, fake.URL, 0)

	page := client.FetchPage(context.Background(), Recommendations(models.MediaTypeTV, 1396), 1)

	require.Len(t, page.Items, 2)
	for _, item := range page.Items {
		assert.Equal(t, models.MediaTypeTV, item.Kind)
	}
	assert.Equal(t, "Better Call Saul", page.Items[0].DisplayTitle())
	assert.Equal(t, "El Camino", page.Items[1].DisplayTitle())
	assert.Equal(t, "2019-10-11", page.Items[1].DisplayDate())
}

func TestRestampToMovie(t *testing.T) {
	item := restamp(models.MediaItem{Kind: models.MediaTypeTV, Name: "Show", FirstAirDate: "2020-01-01"}, models.MediaTypeMovie)

	assert.Equal(t, models.MediaTypeMovie, item.Kind)
	assert.Equal(t, "Show", item.Title)
	assert.Equal(t, "2020-01-01", item.ReleaseDate)
	assert.Empty(t, item.Name)
}
