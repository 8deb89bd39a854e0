package controllers

import (
	"context"
	"fmt"

	"github.com/amaumene/goflix/internal/models"
	"github.com/amaumene/goflix/internal/services/tmdb"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// MaxRecommendations is how many recommendations a details view lists
const MaxRecommendations = 10

// DetailsController assembles the details view of a single title
type DetailsController struct {
	catalog Catalog
	logger  *logrus.Logger
}

// NewDetailsController creates a new details controller
func NewDetailsController(catalog Catalog, logger *logrus.Logger) *DetailsController {
	return &DetailsController{
		catalog: catalog,
		logger:  logger,
	}
}

// View fetches details, trailer and recommendations concurrently. Only a
// failed details call is an error; the trailer and recommendations fall back
// to none.
func (c *DetailsController) View(ctx context.Context, kind models.MediaType, id int) (*models.DetailView, error) {
	var (
		details *models.DetailedMedia
		trailer string
		found   bool
		recs    []models.Card
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		details, err = c.catalog.Details(gctx, kind, id)
		return err
	})
	g.Go(func() error {
		trailer, found = c.catalog.ResolveTrailer(gctx, kind, id)
		return nil
	})
	g.Go(func() error {
		recs = c.Recommendations(gctx, kind, id)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to get %s %d: %w", kind, id, err)
	}

	view := models.NewDetailView(*details, c.catalog.Images())
	if found {
		view.TrailerURL = &trailer
	}
	view.Recommendations = recs

	c.logger.WithFields(logrus.Fields{
		"kind":            kind,
		"id":              id,
		"trailer":         found,
		"recommendations": len(recs),
	}).Debug("Built details view")

	return &view, nil
}

// Trailer resolves the embed URL of the title's trailer
func (c *DetailsController) Trailer(ctx context.Context, kind models.MediaType, id int) (string, bool) {
	return c.catalog.ResolveTrailer(ctx, kind, id)
}

// Recommendations returns up to MaxRecommendations titles recommended for the
// given one, all carrying the requested kind
func (c *DetailsController) Recommendations(ctx context.Context, kind models.MediaType, id int) []models.Card {
	items := c.catalog.FetchPage(ctx, tmdb.Recommendations(kind, id), 1).Items
	if len(items) > MaxRecommendations {
		items = items[:MaxRecommendations]
	}
	return models.Cards(items, c.catalog.Images())
}
