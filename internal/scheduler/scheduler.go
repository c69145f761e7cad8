package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// RefreshFunc fetches the city batch and stores the resulting run.
type RefreshFunc func(ctx context.Context) error

// Scheduler periodically refreshes the weather report.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresh   RefreshFunc
	interval  time.Duration
	timeout   time.Duration
	logger    *zap.Logger
}

// New creates a new Scheduler. timeout bounds each refresh run.
func New(interval, timeout time.Duration, logger *zap.Logger, refresh RefreshFunc) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		refresh:   refresh,
		interval:  interval,
		timeout:   timeout,
		logger:    logger,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		start := time.Now()
		if err := s.refresh(ctx); err != nil {
			// The batch is fail-fast; keep the last good run and try again
			// next interval.
			s.logger.Error("scheduled refresh failed", zap.Error(err))
			return
		}
		s.logger.Info("scheduled refresh completed", zap.Duration("duration", time.Since(start)))
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
