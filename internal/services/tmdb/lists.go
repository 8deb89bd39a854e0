package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/amaumene/goflix/internal/models"
	"github.com/sirupsen/logrus"
)

// Endpoint is a paginated TMDB listing
type Endpoint struct {
	Name string           // metrics and log label
	Path string           // e.g. /trending/movie/week
	Kind models.MediaType // kind for records that carry none
	// Stamp forces Kind onto every item, for listings scoped to one kind
	Stamp bool
}

// TrendingMovies is the weekly trending movies listing
func TrendingMovies() Endpoint {
	return Endpoint{Name: "trending", Path: "/trending/movie/week", Kind: models.MediaTypeMovie}
}

// NowPlaying is the now playing (new releases) movies listing
func NowPlaying() Endpoint {
	return Endpoint{Name: "now_playing", Path: "/movie/now_playing", Kind: models.MediaTypeMovie}
}

// Recommendations lists titles recommended for the given item. Items are
// stamped with the requested kind.
func Recommendations(kind models.MediaType, id int) Endpoint {
	return Endpoint{
		Name:  "recommendations",
		Path:  fmt.Sprintf("/%s/%d/recommendations", kind, id),
		Kind:  kind,
		Stamp: true,
	}
}

// rawPage is the TMDB pagination envelope
type rawPage struct {
	Page         int               `json:"page"`
	Results      []json.RawMessage `json:"results"`
	TotalPages   int               `json:"total_pages"`
	TotalResults int               `json:"total_results"`
}

// FetchPage retrieves one page of a listing. It never fails: on any error it
// returns an empty page whose TotalPages equals the requested page, which
// callers read as the end of the list.
func (c *Client) FetchPage(ctx context.Context, ep Endpoint, page int) models.Page {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var raw rawPage
	if err := c.getJSON(ctx, ep.Name, ep.Path, params, false, &raw); err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"endpoint": ep.Name,
			"page":     page,
		}).Warn("Failed to fetch page, treating list as exhausted")
		return models.EmptyPage(page)
	}

	items := make([]models.MediaItem, 0, len(raw.Results))
	for _, r := range raw.Results {
		item := models.Normalize(r, ep.Kind)
		if ep.Stamp {
			item = restamp(item, ep.Kind)
		}
		items = append(items, item)
	}

	totalPages := raw.TotalPages
	if totalPages < page {
		totalPages = page
	}
	totalResults := raw.TotalResults
	if totalResults < 0 {
		totalResults = 0
	}

	return models.Page{
		Page:         page,
		Items:        items,
		TotalPages:   totalPages,
		TotalResults: totalResults,
	}
}

// restamp moves the title fields over when the kind changes
func restamp(item models.MediaItem, kind models.MediaType) models.MediaItem {
	if item.Kind == kind {
		return item
	}
	title, date := item.Title, item.ReleaseDate
	if item.Kind == models.MediaTypeTV {
		title, date = item.Name, item.FirstAirDate
	}
	item.Title, item.ReleaseDate, item.Name, item.FirstAirDate = "", "", "", ""
	item.Kind = kind
	if kind == models.MediaTypeTV {
		item.Name, item.FirstAirDate = title, date
	} else {
		item.Title, item.ReleaseDate = title, date
	}
	return item
}
