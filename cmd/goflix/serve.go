package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amaumene/goflix/internal/api"
	"github.com/amaumene/goflix/internal/controllers"
	"github.com/amaumene/goflix/internal/scheduler"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	// 1. Configuration, logger, TMDB client and storage
	a, err := newApp(os.Stdout, true)
	if err != nil {
		return err
	}
	defer a.Close()

	logger := a.logger
	logger.Info("Starting goflix")
	logger.WithFields(logrus.Fields{
		"storage":  a.cfg.StorageBackend,
		"language": a.cfg.TMDBLanguage,
	}).Info("Configuration loaded")

	// 2. Controllers
	browseCtrl := controllers.NewBrowseController(a.client, logger)
	detailsCtrl := controllers.NewDetailsController(a.client, logger)
	logger.Info("Controllers initialized")

	// 3. Scheduler
	sched := scheduler.NewScheduler(browseCtrl, a.cfg.HighlightsSchedule, 2*a.cfg.TMDBTimeout, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	// 4. HTTP server, until the context is cancelled by a signal
	server := api.NewServer(a.cfg, browseCtrl, detailsCtrl, a.client, a.favorites, a.kv, logger)
	logger.Info("goflix is running")
	if err := server.Start(ctx); err != nil {
		return err
	}

	logger.Info("goflix stopped")
	return nil
}
