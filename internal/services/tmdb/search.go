package tmdb

import (
	"context"
	"net/url"
	"strings"

	"github.com/amaumene/goflix/internal/models"
)

// MaxSuggestions caps the number of search suggestions
const MaxSuggestions = 5

// Suggest runs a multi-type search and returns up to MaxSuggestions movies
// and tv shows in API order. People and other kinds are dropped. A blank
// query returns nothing without calling the API, and so does a failed search.
func (c *Client) Suggest(ctx context.Context, query string) []models.MediaItem {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.MediaItem{}
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	params.Set("page", "1")

	var raw rawPage
	if err := c.getJSON(ctx, "search", "/search/multi", params, true, &raw); err != nil {
		c.logger.WithError(err).WithField("query", query).Warn("Search failed")
		return []models.MediaItem{}
	}

	items := make([]models.MediaItem, 0, MaxSuggestions)
	for _, r := range raw.Results {
		kind, ok := models.ParseMediaType(models.ExplicitKind(r))
		if !ok {
			continue
		}
		items = append(items, models.Normalize(r, kind))
		if len(items) == MaxSuggestions {
			break
		}
	}
	return items
}
