package handlers

import (
	"net/http"

	"github.com/amaumene/goflix/internal/controllers"
	"github.com/sirupsen/logrus"
)

// MediaHandler serves listings, highlights and per-title views
type MediaHandler struct {
	browseCtrl  *controllers.BrowseController
	detailsCtrl *controllers.DetailsController
	logger      *logrus.Logger
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(browseCtrl *controllers.BrowseController, detailsCtrl *controllers.DetailsController, logger *logrus.Logger) *MediaHandler {
	return &MediaHandler{
		browseCtrl:  browseCtrl,
		detailsCtrl: detailsCtrl,
		logger:      logger,
	}
}

// Trending handles GET /api/trending
func (h *MediaHandler) Trending(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.browseCtrl.Trending(r.Context(), pageParam(r)), h.logger)
}

// NowPlaying handles GET /api/now-playing
func (h *MediaHandler) NowPlaying(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.browseCtrl.NowPlaying(r.Context(), pageParam(r)), h.logger)
}

// Highlights handles GET /api/highlights
func (h *MediaHandler) Highlights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.browseCtrl.Highlights(r.Context()), h.logger)
}

// Details handles GET /api/{kind}/{id}
func (h *MediaHandler) Details(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := mediaVars(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported media type or id", h.logger)
		return
	}

	view, err := h.detailsCtrl.View(r.Context(), kind, id)
	if err != nil {
		h.logger.WithError(err).Debug("Details unavailable")
		writeError(w, http.StatusNotFound, "details not available", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

// Trailer handles GET /api/{kind}/{id}/trailer
func (h *MediaHandler) Trailer(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := mediaVars(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported media type or id", h.logger)
		return
	}

	response := map[string]*string{"url": nil}
	if url, found := h.detailsCtrl.Trailer(r.Context(), kind, id); found {
		response["url"] = &url
	}
	writeJSON(w, http.StatusOK, response, h.logger)
}

// Recommendations handles GET /api/{kind}/{id}/recommendations
func (h *MediaHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := mediaVars(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported media type or id", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.detailsCtrl.Recommendations(r.Context(), kind, id), h.logger)
}
