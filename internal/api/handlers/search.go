package handlers

import (
	"context"
	"net/http"

	"github.com/amaumene/goflix/internal/models"
	"github.com/sirupsen/logrus"
)

// Suggester returns search suggestions for a query
type Suggester interface {
	Suggest(ctx context.Context, query string) []models.MediaItem
	Images() models.Images
}

// SearchHandler serves search suggestions
type SearchHandler struct {
	suggester Suggester
	logger    *logrus.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(suggester Suggester, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{
		suggester: suggester,
		logger:    logger,
	}
}

// ServeHTTP handles GET /api/search?q=
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items := h.suggester.Suggest(r.Context(), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, models.Cards(items, h.suggester.Images()), h.logger)
}
