package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/etherlabsio/healthcheck"
	"github.com/sirupsen/logrus"
)

// Pinger is anything whose liveness can be probed
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHealthHandler creates the health check endpoint. It reports 200 while
// the favorites storage answers and 503 otherwise.
func NewHealthHandler(storage Pinger, logger *logrus.Logger) http.Handler {
	return healthcheck.Handler(
		healthcheck.WithTimeout(5*time.Second),
		healthcheck.WithChecker("storage", healthcheck.CheckerFunc(func(ctx context.Context) error {
			err := storage.Ping(ctx)
			if err != nil {
				logger.WithError(err).Warn("Storage health check failed")
			}
			return err
		})),
	)
}
