// Package scheduler drives the periodic monitoring cycle.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Runner is the unit of work executed on every tick.
type Runner interface {
	RunCycle(ctx context.Context)
}

// Scheduler runs cycles strictly sequentially: once immediately at startup,
// then on a fixed interval until the context is cancelled. Because the loop
// and the cycle body share one goroutine, cycles never overlap.
type Scheduler struct {
	runner   Runner
	interval time.Duration
	log      *slog.Logger
}

// New creates a Scheduler with the given check interval.
func New(runner Runner, interval time.Duration, log *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		log:      log,
	}
}

// Run starts the scheduler loop, blocking until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info("running initial check", "interval", s.interval)
	s.runner.RunCycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runner.RunCycle(ctx)
		}
	}
}
