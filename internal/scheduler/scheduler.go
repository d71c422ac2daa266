// Package scheduler drives the periodic reconciliation loop and the service
// lifecycle around it.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"stream_tracker/internal/domain"
	"stream_tracker/internal/service"
)

const (
	tickTimeout     = 5 * time.Minute
	shutdownTimeout = 30 * time.Second
)

// Engine is the reconciliation surface the scheduler drives.
type Engine interface {
	LoadRoster(ctx context.Context) error
	SaveRoster(ctx context.Context) error
	Tick(ctx context.Context) (*domain.TickStats, error)
	Register(sink service.Sink)
	Unregister(sink service.Sink)
	NotifyStarting(ctx context.Context)
	NotifyStarted()
	NotifyExiting(ctx context.Context)
	NotifyExited()
}

type Scheduler struct {
	engine   Engine
	sinks    []service.Sink
	interval time.Duration
	logger   *slog.Logger
}

// New creates a scheduler and registers the sinks on the engine.
func New(engine Engine, sinks []service.Sink, interval time.Duration, logger *slog.Logger) *Scheduler {
	for _, sink := range sinks {
		engine.Register(sink)
	}
	return &Scheduler{
		engine:   engine,
		sinks:    sinks,
		interval: interval,
		logger:   logger.With("component", "scheduler"),
	}
}

// Start emits the starting signal, loads the roster, then ticks once per
// interval until ctx is cancelled. On cancellation it emits the exiting
// signal, performs a best-effort final save, and emits the exited signal.
func (s *Scheduler) Start(ctx context.Context) error {
	s.engine.NotifyStarting(ctx)

	if err := s.engine.LoadRoster(ctx); err != nil {
		return err
	}

	s.engine.NotifyStarted()
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runTick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.shutdown()
			return ctx.Err()
		case <-ticker.C:
			s.runTick(ctx)
		}
	}
}

// runTick executes one tick. A failing tick (persistence errors included) is
// logged and retried on the next interval; the full roster is rewritten every
// tick so nothing is lost by carrying on.
func (s *Scheduler) runTick(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, tickTimeout)
	defer cancel()

	if _, err := s.engine.Tick(tickCtx); err != nil {
		s.logger.Error("tick failed", "error", err)
	}
}

// shutdown runs the exit sequence on a fresh context so the final save is
// attempted even though the run context is already cancelled.
func (s *Scheduler) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.engine.NotifyExiting(ctx)

	if err := s.engine.SaveRoster(ctx); err != nil {
		s.logger.Error("final roster save failed", "error", err)
	}

	for _, sink := range s.sinks {
		s.engine.Unregister(sink)
	}

	s.engine.NotifyExited()
	s.logger.Info("scheduler stopped")
}
