package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// HighlightsRefresher reloads the highlights carousel
type HighlightsRefresher interface {
	RefreshHighlights(ctx context.Context) int
}

// Scheduler manages scheduled tasks
type Scheduler struct {
	cron       *cron.Cron
	browseCtrl HighlightsRefresher
	schedule   string
	timeout    time.Duration
	logger     *logrus.Logger
	done       chan struct{}
}

// NewScheduler creates a new scheduler
func NewScheduler(browseCtrl HighlightsRefresher, schedule string, timeout time.Duration, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		browseCtrl: browseCtrl,
		schedule:   schedule,
		timeout:    timeout,
		logger:     logger,
		done:       make(chan struct{}),
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.logger.WithField("schedule", s.schedule).Info("Starting scheduler")

	_, err := s.cron.AddFunc(s.schedule, func() {
		s.runHighlights()
	})
	if err != nil {
		return fmt.Errorf("failed to add highlights job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler started")

	// Warm the carousel right away instead of waiting for the first tick
	go func() {
		defer close(s.done)
		s.runHighlights()
	}()

	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
	<-s.done
}

// runHighlights executes the highlights refresh job
func (s *Scheduler) runHighlights() {
	s.logger.Debug("Running scheduled highlights refresh")

	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	n := s.browseCtrl.RefreshHighlights(ctx)
	s.logger.WithField("count", n).Debug("Highlights job completed")
}
