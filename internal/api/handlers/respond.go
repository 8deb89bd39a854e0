package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/amaumene/goflix/internal/models"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// writeJSON encodes v as the response body
func writeJSON(w http.ResponseWriter, status int, v interface{}, logger *logrus.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithError(err).Debug("Failed to write response")
	}
}

// writeError sends a JSON error body
func writeError(w http.ResponseWriter, status int, msg string, logger *logrus.Logger) {
	writeJSON(w, status, map[string]string{"error": msg}, logger)
}

// mediaVars extracts and validates the {kind} and {id} route variables
func mediaVars(r *http.Request) (models.MediaType, int, bool) {
	vars := mux.Vars(r)
	kind, ok := models.ParseMediaType(vars["kind"])
	if !ok {
		return "", 0, false
	}
	id, ok := idVar(r)
	return kind, id, ok
}

func idVar(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pageParam reads ?page=N, defaulting to 1
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
