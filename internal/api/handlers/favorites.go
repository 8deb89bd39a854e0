package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/amaumene/goflix/internal/favorites"
	"github.com/amaumene/goflix/internal/models"
	"github.com/sirupsen/logrus"
)

// maxToggleBody caps the size of a toggle request
const maxToggleBody = 64 * 1024

// FavoritesHandler serves the favorites list
type FavoritesHandler struct {
	store  *favorites.Store
	logger *logrus.Logger
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(store *favorites.Store, logger *logrus.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		store:  store,
		logger: logger,
	}
}

// List handles GET /api/favorites
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List(r.Context()), h.logger)
}

// Contains handles GET /api/favorites/{id}
func (h *FavoritesHandler) Contains(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"favorite": h.store.Contains(r.Context(), id)}, h.logger)
}

// Toggle handles POST /api/favorites/toggle. The body is a media record in
// TMDB shape. A storage failure leaves the list untouched and answers 503.
func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxToggleBody))
	if err != nil || !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "invalid media record", h.logger)
		return
	}

	item := models.Normalize(body, models.MediaTypeTV)
	if item.ID <= 0 {
		writeError(w, http.StatusBadRequest, "media record has no id", h.logger)
		return
	}

	favorite, err := h.store.Toggle(r.Context(), item)
	if err != nil {
		h.logger.WithError(err).WithField("id", item.ID).Warn("Failed to persist favorite toggle")
		writeError(w, http.StatusServiceUnavailable, "favorites unavailable", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"favorite": favorite}, h.logger)
}

// Remove handles DELETE /api/favorites/{id}
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", h.logger)
		return
	}

	if err := h.store.Remove(r.Context(), id); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to remove favorite")
		writeError(w, http.StatusInternalServerError, "failed to remove favorite", h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
