package tmdb

import (
	"context"
	"fmt"

	"github.com/amaumene/goflix/internal/models"
	"github.com/sirupsen/logrus"
)

type videosResponse struct {
	ID      int            `json:"id"`
	Results []models.Video `json:"results"`
}

// Videos lists the videos attached to a movie or tv show, in API order
func (c *Client) Videos(ctx context.Context, kind models.MediaType, id int) ([]models.Video, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unsupported media type %q", kind)
	}

	path := fmt.Sprintf("/%s/%d/videos", kind, id)

	var resp videosResponse
	if err := c.getJSON(ctx, "videos", path, nil, false, &resp); err != nil {
		return nil, fmt.Errorf("failed to get videos: %w", err)
	}
	return resp.Results, nil
}

// ResolveTrailer returns an embeddable URL for the item's first YouTube
// trailer. A failed request and a missing trailer both return false.
func (c *Client) ResolveTrailer(ctx context.Context, kind models.MediaType, id int) (string, bool) {
	videos, err := c.Videos(ctx, kind, id)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"kind": kind,
			"id":   id,
		}).Debug("No trailer: video listing unavailable")
		return "", false
	}

	trailer, ok := models.SelectTrailer(videos)
	if !ok {
		return "", false
	}
	return models.TrailerEmbedURL(trailer.Key), true
}
