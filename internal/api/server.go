package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/amaumene/goflix/internal/api/handlers"
	"github.com/amaumene/goflix/internal/api/middleware"
	"github.com/amaumene/goflix/internal/config"
	"github.com/amaumene/goflix/internal/controllers"
	"github.com/amaumene/goflix/internal/favorites"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP server
type Server struct {
	server      *http.Server
	browseCtrl  *controllers.BrowseController
	detailsCtrl *controllers.DetailsController
	suggester   handlers.Suggester
	favorites   *favorites.Store
	storage     handlers.Pinger
	logger      *logrus.Logger
}

// NewServer creates a new HTTP server
func NewServer(
	cfg *config.Config,
	browseCtrl *controllers.BrowseController,
	detailsCtrl *controllers.DetailsController,
	suggester handlers.Suggester,
	favoritesStore *favorites.Store,
	storage handlers.Pinger,
	logger *logrus.Logger,
) *Server {
	s := &Server{
		browseCtrl:  browseCtrl,
		detailsCtrl: detailsCtrl,
		suggester:   suggester,
		favorites:   favoritesStore,
		storage:     storage,
		logger:      logger,
	}

	s.server = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the routed handler with CORS applied
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	s.setupRoutes(router)

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{"*"}),
		gorillahandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return cors(router)
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(router *mux.Router) {
	router.Use(middleware.Logging(s.logger))

	router.Handle("/health", handlers.NewHealthHandler(s.storage, s.logger)).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// Favorites first so "favorites" is never taken for a {kind}
	fav := handlers.NewFavoritesHandler(s.favorites, s.logger)
	api.HandleFunc("/favorites", fav.List).Methods(http.MethodGet)
	api.HandleFunc("/favorites/toggle", fav.Toggle).Methods(http.MethodPost)
	api.HandleFunc("/favorites/{id:[0-9]+}", fav.Contains).Methods(http.MethodGet)
	api.HandleFunc("/favorites/{id:[0-9]+}", fav.Remove).Methods(http.MethodDelete)

	api.Handle("/search", handlers.NewSearchHandler(s.suggester, s.logger)).Methods(http.MethodGet)

	media := handlers.NewMediaHandler(s.browseCtrl, s.detailsCtrl, s.logger)
	api.HandleFunc("/trending", media.Trending).Methods(http.MethodGet)
	api.HandleFunc("/now-playing", media.NowPlaying).Methods(http.MethodGet)
	api.HandleFunc("/highlights", media.Highlights).Methods(http.MethodGet)
	api.HandleFunc("/{kind}/{id:[0-9]+}", media.Details).Methods(http.MethodGet)
	api.HandleFunc("/{kind}/{id:[0-9]+}/trailer", media.Trailer).Methods(http.MethodGet)
	api.HandleFunc("/{kind}/{id:[0-9]+}/recommendations", media.Recommendations).Methods(http.MethodGet)
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.WithField("port", s.server.Addr).Info("Starting HTTP server")

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
