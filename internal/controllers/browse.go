package controllers

import (
	"context"
	"sync"
	"time"

	"github.com/amaumene/goflix/internal/models"
	"github.com/amaumene/goflix/internal/services/tmdb"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// MaxHighlights is how many trending titles the highlights carousel shows
const MaxHighlights = 3

// Catalog is the part of the TMDB client the controllers depend on
type Catalog interface {
	FetchPage(ctx context.Context, ep tmdb.Endpoint, page int) models.Page
	Details(ctx context.Context, kind models.MediaType, id int) (*models.DetailedMedia, error)
	ResolveTrailer(ctx context.Context, kind models.MediaType, id int) (string, bool)
	Images() models.Images
}

// Highlight is a trending title enriched with genres and duration
type Highlight struct {
	models.Card
	BackdropURL string `json:"backdrop_url"`
	Genres      string `json:"genres"`
	Duration    string `json:"duration"`
}

// BrowseController serves the listings and the highlights carousel
type BrowseController struct {
	catalog Catalog
	logger  *logrus.Logger

	mu          sync.RWMutex
	highlights  []Highlight
	refreshedAt time.Time
}

// NewBrowseController creates a new browse controller
func NewBrowseController(catalog Catalog, logger *logrus.Logger) *BrowseController {
	return &BrowseController{
		catalog: catalog,
		logger:  logger,
	}
}

// Trending returns one page of weekly trending movies
func (c *BrowseController) Trending(ctx context.Context, page int) models.CardPage {
	return c.catalog.FetchPage(ctx, tmdb.TrendingMovies(), page).Cards(c.catalog.Images())
}

// NowPlaying returns one page of movies now in theaters
func (c *BrowseController) NowPlaying(ctx context.Context, page int) models.CardPage {
	return c.catalog.FetchPage(ctx, tmdb.NowPlaying(), page).Cards(c.catalog.Images())
}

// Highlights returns the last refreshed highlights, refreshing first if
// nothing has been loaded yet
func (c *BrowseController) Highlights(ctx context.Context) []Highlight {
	c.mu.RLock()
	loaded := !c.refreshedAt.IsZero()
	c.mu.RUnlock()

	if !loaded {
		c.RefreshHighlights(ctx)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Highlight, len(c.highlights))
	copy(out, c.highlights)
	return out
}

// RefreshHighlights reloads the top trending titles and enriches each with
// its details. A failed detail call keeps the plain summary. When trending
// itself comes back empty the previous highlights are kept.
func (c *BrowseController) RefreshHighlights(ctx context.Context) int {
	page := c.catalog.FetchPage(ctx, tmdb.TrendingMovies(), 1)
	top := page.Items
	if len(top) > MaxHighlights {
		top = top[:MaxHighlights]
	}

	c.mu.RLock()
	previous := len(c.highlights)
	c.mu.RUnlock()
	if len(top) == 0 && previous > 0 {
		c.logger.Warn("Trending returned nothing, keeping previous highlights")
		return previous
	}

	images := c.catalog.Images()
	highlights := make([]Highlight, len(top))

	var g errgroup.Group
	for i, item := range top {
		i, item := i, item
		highlights[i] = Highlight{
			Card:        item.Card(images),
			BackdropURL: images.Backdrop(item.BackdropPath),
			Genres:      models.NotAvailable,
			Duration:    models.NotAvailable,
		}
		g.Go(func() error {
			details, err := c.catalog.Details(ctx, item.Kind, item.ID)
			if err != nil {
				c.logger.WithError(err).WithField("id", item.ID).Debug("Highlight left unenriched")
				return nil
			}
			highlights[i].Genres = models.FormatGenres(details.Genres)
			highlights[i].Duration = details.Duration()
			return nil
		})
	}
	_ = g.Wait()

	c.mu.Lock()
	c.highlights = highlights
	c.refreshedAt = time.Now()
	c.mu.Unlock()

	c.logger.WithField("count", len(highlights)).Info("Highlights refreshed")
	return len(highlights)
}

// RefreshedAt returns when the highlights were last refreshed
func (c *BrowseController) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshedAt
}
