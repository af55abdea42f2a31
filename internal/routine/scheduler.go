// Package routine schedules the recurring system cycles: the daily
// routine and the hourly wing checks.
package routine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/aretw0/lifeos/internal/logging"
)

// ErrAlreadyRunning is returned when Start is called on a running
// scheduler.
var ErrAlreadyRunning = errors.New("scheduler already running")

// Jobs carries the callbacks the scheduler fires. Nil entries are
// skipped.
type Jobs struct {
	// Daily runs the full morning routine.
	Daily func(ctx context.Context)
	// Wings runs the wing checks.
	Wings func(ctx context.Context)
}

// Scheduler drives the recurring jobs on cron schedules.
type Scheduler struct {
	dailySpec string
	wingsSpec string
	jobs      Jobs
	logger    *slog.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	cancel  context.CancelFunc
	running bool
}

// Option configures the Scheduler.
type Option func(*Scheduler)

// WithLogger sets the scheduler's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithDailySchedule overrides the daily routine cron expression.
func WithDailySchedule(spec string) Option {
	return func(s *Scheduler) {
		s.dailySpec = spec
	}
}

// WithWingsSchedule overrides the wing check cron expression.
func WithWingsSchedule(spec string) Option {
	return func(s *Scheduler) {
		s.wingsSpec = spec
	}
}

// NewScheduler creates a scheduler with the default cadence: daily
// routine at 06:00, wing checks every hour.
func NewScheduler(jobs Jobs, opts ...Option) *Scheduler {
	s := &Scheduler{
		dailySpec: "0 6 * * *",
		wingsSpec: "0 * * * *",
		jobs:      jobs,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start registers the jobs and begins the cron loop. It returns once
// the loop is running.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := cron.New()

	if s.jobs.Daily != nil {
		if _, err := c.AddFunc(s.dailySpec, func() {
			s.logger.Info("running scheduled daily routine")
			s.jobs.Daily(ctx)
		}); err != nil {
			cancel()
			return fmt.Errorf("invalid daily schedule %q: %w", s.dailySpec, err)
		}
	}
	if s.jobs.Wings != nil {
		if _, err := c.AddFunc(s.wingsSpec, func() {
			s.logger.Info("running scheduled wing checks")
			s.jobs.Wings(ctx)
		}); err != nil {
			cancel()
			return fmt.Errorf("invalid wings schedule %q: %w", s.wingsSpec, err)
		}
	}

	c.Start()
	s.cron = c
	s.cancel = cancel
	s.running = true

	s.logger.Info("scheduler started", "daily", s.dailySpec, "wings", s.wingsSpec)
	return nil
}

// Stop halts the cron loop and cancels any in-flight job contexts. It
// is safe to call on a stopped scheduler.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	<-s.cron.Stop().Done()
	s.cancel()
	s.cron = nil
	s.cancel = nil
	s.running = false
	s.logger.Info("scheduler stopped")
}

// Running reports whether the cron loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
