package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/amaumene/goflix/internal/models"
)

// Details retrieves a movie or tv show with its credits embedded
func (c *Client) Details(ctx context.Context, kind models.MediaType, id int) (*models.DetailedMedia, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unsupported media type %q", kind)
	}

	params := url.Values{}
	params.Set("append_to_response", "credits")
	path := fmt.Sprintf("/%s/%d", kind, id)

	var raw json.RawMessage
	if err := c.getJSON(ctx, "details", path, params, false, &raw); err != nil {
		return nil, fmt.Errorf("failed to get details: %w", err)
	}

	details, err := models.NormalizeDetails(raw, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to get details: %w", err)
	}
	return details, nil
}
