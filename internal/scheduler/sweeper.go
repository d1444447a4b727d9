// Package scheduler runs the periodic background jobs of the budget
// service.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	"adpace/internal/telemetry"
)

// AlertSweeper is the slice of the budget service the sweeper uses.
type AlertSweeper interface {
	SweepAlerts(ctx context.Context) (int, error)
}

// Sweeper evaluates every campaign on a cron schedule and persists the
// alerts it finds.
type Sweeper struct {
	uc       AlertSweeper
	schedule string
	metrics  *telemetry.Metrics
	logger   *slog.Logger

	cron    *cron.Cron
	mu      sync.Mutex
	running bool
}

// NewSweeper creates a sweeper for the given cron schedule. Descriptors
// like "@hourly" work as well as five-field expressions.
func NewSweeper(uc AlertSweeper, schedule string, metrics *telemetry.Metrics, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		uc:       uc,
		schedule: schedule,
		metrics:  metrics,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start schedules the sweep and returns. An empty schedule disables the
// sweeper. The cron loop stops when ctx is done.
func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == "" {
		s.logger.Info("alert sweep schedule empty, sweeper disabled")
		return nil
	}
	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.schedule, err)
	}
	if _, err := s.cron.AddFunc(s.schedule, func() {
		s.runSweep(ctx)
	}); err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}

	s.cron.Start()
	s.running = true
	s.logger.Info("alert sweeper started", "schedule", s.schedule)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

func (s *Sweeper) runSweep(ctx context.Context) {
	n, err := s.uc.SweepAlerts(ctx)
	if err != nil {
		s.logger.Error("alert sweep failed", "error", err)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordSweep(n)
	}
	s.logger.Info("alert sweep completed", "alerts", n)
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	<-s.cron.Stop().Done()
	s.running = false
	s.logger.Info("alert sweeper stopped")
}
