package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/amaumene/goflix/internal/config"
	"github.com/amaumene/goflix/internal/favorites"
	"github.com/amaumene/goflix/internal/models"
	"github.com/amaumene/goflix/internal/services/tmdb"
	"github.com/amaumene/goflix/internal/storage"
	"github.com/amaumene/goflix/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "goflix",
		Short:         "Browse TMDB movies and tv shows and keep a favorites list",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newListingCmd("trending", "List this week's trending movies", tmdb.TrendingMovies, true),
		newListingCmd("now-playing", "List movies now in theaters", tmdb.NowPlaying, false),
		newDetailsCmd(),
		newTrailerCmd(),
		newSearchCmd(),
		newFavoritesCmd(),
	)
	return root
}

// app holds what every command needs once configuration is loaded
type app struct {
	cfg       *config.Config
	logger    *logrus.Logger
	client    *tmdb.Client
	kv        storage.KV // nil unless opened
	favorites *favorites.Store
}

// newApp loads configuration and builds the TMDB client. Storage is only
// opened when asked for, so read-only commands never lock the database.
func newApp(logOut io.Writer, withStorage bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := utils.NewLoggerTo(logOut, cfg.LogLevel)

	client, err := tmdb.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize TMDB client: %w", err)
	}

	a := &app{cfg: cfg, logger: logger, client: client}
	if withStorage {
		kv, err := storage.Open(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
		a.kv = kv
		a.favorites = favorites.NewStore(kv, logger)
	}
	return a, nil
}

func (a *app) Close() {
	if a.kv == nil {
		return
	}
	if err := a.kv.Close(); err != nil {
		a.logger.WithError(err).Warn("Failed to close storage")
	}
}

// cliApp builds an app that logs to stderr, keeping stdout for results
func cliApp(withStorage bool) (*app, error) {
	return newApp(os.Stderr, withStorage)
}

// parseMediaArgs reads "<movie|tv> <id>"
func parseMediaArgs(args []string) (models.MediaType, int, error) {
	kind, ok := models.ParseMediaType(args[0])
	if !ok {
		return "", 0, fmt.Errorf("unsupported media type %q, want movie or tv", args[0])
	}
	id, err := parseID(args[1])
	if err != nil {
		return "", 0, err
	}
	return kind, id, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
