// Package service implements the broadcast-state reconciliation engine.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"stream_tracker/internal/config"
	"stream_tracker/internal/domain"
)

type bucket int

const (
	bucketNone bucket = iota
	bucketDetected
	bucketEnded
	bucketContinuing
	bucketRefresh
)

// Tracker owns the in-memory roster and reconciles it against the status
// source once per tick, dispatching category-batched notifications to the
// registered sinks.
type Tracker struct {
	source    StatusSource
	directory UserDirectory
	store     RosterStore
	cfg       config.PollConfig
	logger    *slog.Logger

	roster roster

	sinkMu sync.RWMutex
	sinks  []Sink
}

func New(
	source StatusSource,
	directory UserDirectory,
	store RosterStore,
	cfg config.PollConfig,
	logger *slog.Logger,
) *Tracker {
	return &Tracker{
		source:    source,
		directory: directory,
		store:     store,
		cfg:       cfg,
		logger:    logger.With("component", "tracker"),
	}
}

// Register adds a notification sink.
func (t *Tracker) Register(sink Sink) {
	t.sinkMu.Lock()
	defer t.sinkMu.Unlock()
	t.sinks = append(t.sinks, sink)
}

// Unregister removes a previously registered sink.
func (t *Tracker) Unregister(sink Sink) {
	t.sinkMu.Lock()
	defer t.sinkMu.Unlock()
	for i, s := range t.sinks {
		if s == sink {
			t.sinks = append(t.sinks[:i], t.sinks[i+1:]...)
			return
		}
	}
}

// dispatch invokes fn on every registered sink. A failing sink is logged and
// does not stop delivery to the rest.
func (t *Tracker) dispatch(event string, fn func(Sink) error) {
	t.sinkMu.RLock()
	sinks := make([]Sink, len(t.sinks))
	copy(sinks, t.sinks)
	t.sinkMu.RUnlock()

	for _, sink := range sinks {
		if err := fn(sink); err != nil {
			t.logger.Error("sink notification failed", "event", event, "error", err)
		}
	}
}

// LoadRoster populates the in-memory roster from the checkpoint. Liveness
// flags from the checkpoint are trusted as-is: a streamer persisted as live
// and still live on the first tick is classified as continuing, never as a
// fresh detection.
func (t *Tracker) LoadRoster(ctx context.Context) error {
	streamers, err := t.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	for i := range streamers {
		s := streamers[i]
		t.roster.insert(&s)
	}

	t.logger.Info("roster loaded", "tracked", t.roster.len())
	return nil
}

// SaveRoster checkpoints the current roster.
func (t *Tracker) SaveRoster(ctx context.Context) error {
	if err := t.store.Save(ctx, t.roster.snapshot()); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	return nil
}

// Tracked returns the number of streamers on the roster.
func (t *Tracker) Tracked() int {
	return t.roster.len()
}

// AddUser resolves a login and adds it to the roster. Returns
// domain.ErrUserNotFound when the login does not resolve and
// domain.ErrAlreadyTracked when the resolved ID is already tracked.
func (t *Tracker) AddUser(ctx context.Context, login string) (*domain.Streamer, error) {
	profile, err := t.directory.UserByLogin(ctx, login)
	if err != nil {
		return nil, err
	}

	s := &domain.Streamer{
		ID:              profile.ID,
		Login:           strings.ToLower(profile.Login),
		DisplayName:     profile.DisplayName,
		ProfileImageURL: profile.ProfileImageURL,
	}

	if !t.roster.insert(s) {
		return nil, fmt.Errorf("add %q: %w", login, domain.ErrAlreadyTracked)
	}

	t.logger.Info("user added", "login", s.Login, "id", s.ID)
	t.dispatch("user added", func(sink Sink) error { return sink.UserAdded(ctx, *s) })

	if err := t.SaveRoster(ctx); err != nil {
		return s, err
	}
	return s, nil
}

// RemoveUser removes a streamer by case-insensitive login match. Returns
// domain.ErrNotTracked when no roster entry matches.
func (t *Tracker) RemoveUser(ctx context.Context, login string) error {
	s, ok := t.roster.findByLogin(login)
	if !ok {
		return fmt.Errorf("remove %q: %w", login, domain.ErrNotTracked)
	}

	removed, ok := t.roster.remove(s.ID)
	if !ok {
		// Lost a race with a concurrent remove for the same entry.
		return fmt.Errorf("remove %q: entry vanished", login)
	}

	t.logger.Info("user removed", "login", removed.Login, "id", removed.ID)
	t.dispatch("user removed", func(sink Sink) error { return sink.UserRemoved(ctx, *removed) })

	return t.SaveRoster(ctx)
}

// Tick runs one reconciliation cycle: batch the roster, query the status
// source, classify every streamer, dispatch one notification per non-empty
// category, and checkpoint the roster. Batch failures are isolated and
// reported per streamer; only the final save can fail the tick.
func (t *Tracker) Tick(ctx context.Context) (*domain.TickStats, error) {
	start := time.Now()
	stats := &domain.TickStats{}

	ids := t.roster.ids()
	stats.Tracked = len(ids)

	for _, batch := range partition(ids, t.cfg.BatchSize) {
		if ctx.Err() != nil {
			t.logger.Warn("tick cancelled, skipping remaining batches")
			break
		}
		t.processBatch(ctx, batch, stats)
	}

	stats.Duration = time.Since(start)

	t.logger.Info("tick completed",
		"tracked", stats.Tracked,
		"detected", stats.Detected,
		"ended", stats.Ended,
		"continuing", stats.Continuing,
		"refreshed", stats.Refreshed,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	// The roster is checkpointed whether or not anything changed.
	if err := t.SaveRoster(ctx); err != nil {
		return stats, err
	}
	return stats, nil
}

// processBatch reconciles one batch of user IDs. A status-query failure is
// reported once per ID and never aborts the tick.
func (t *Tracker) processBatch(ctx context.Context, ids []string, stats *domain.TickStats) {
	live, err := t.source.Streams(ctx, ids)
	if err != nil {
		t.logger.Error("status query failed", "batch_size", len(ids), "error", err)
		stats.Errors += len(ids)
		for _, id := range ids {
			t.dispatch("stream error", func(sink Sink) error {
				return sink.StreamError(ctx, id, "status query failed", err)
			})
		}
		return
	}

	now := time.Now()

	var (
		mu         sync.Mutex
		detected   []domain.Streamer
		ended      []domain.Streamer
		continuing []domain.Streamer
		refreshed  []domain.Streamer
	)

	g := new(errgroup.Group)
	for _, id := range ids {
		g.Go(func() error {
			// Re-fetch after the query await point: the entry may have been
			// removed while the status call was in flight.
			s, ok := t.roster.get(id)
			if !ok {
				return nil
			}

			b, updated, snap := t.classify(s, live, now)
			if b == bucketNone {
				return nil
			}
			// Swap the updated copy into the roster. A failed swap means the
			// entry was removed while this batch was in flight; drop the
			// transition instead of resurrecting it.
			if !t.roster.replace(id, s, updated) {
				return nil
			}

			mu.Lock()
			switch b {
			case bucketDetected:
				detected = append(detected, snap)
			case bucketEnded:
				ended = append(ended, snap)
			case bucketContinuing:
				continuing = append(continuing, snap)
			case bucketRefresh:
				refreshed = append(refreshed, snap)
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	stats.Detected += len(detected)
	stats.Ended += len(ended)
	stats.Continuing += len(continuing)
	stats.Refreshed += len(refreshed)

	if len(detected) > 0 {
		t.dispatch("streams detected", func(sink Sink) error {
			return sink.StreamsDetected(ctx, detected)
		})
	}
	if len(ended) > 0 {
		t.dispatch("streams ended", func(sink Sink) error {
			return sink.StreamsEnded(ctx, ended)
		})
	}
	if len(continuing) > 0 {
		t.dispatch("streams continuing", func(sink Sink) error {
			return sink.StreamsContinuing(ctx, continuing)
		})
	}
	if len(refreshed) > 0 {
		t.dispatch("media refresh due", func(sink Sink) error {
			return sink.MediaRefreshDue(ctx, refreshed)
		})
	}
}

// classify applies the transition state machine to one streamer. Published
// roster entries are never mutated, so the result is a fresh copy for the
// caller to swap into the roster plus the snapshot to carry in the
// notification payload.
func (t *Tracker) classify(s *domain.Streamer, live map[string]domain.BroadcastMetadata, now time.Time) (bucket, *domain.Streamer, domain.Streamer) {
	meta, isLiveNow := live[s.ID]

	switch {
	case !s.IsLive && isLiveNow:
		updated := *s
		updated.IsLive = true
		updated.LastOnline = &now
		refreshAt := now.Add(t.cfg.MediaRefreshInterval)
		updated.NextMediaRefreshAt = &refreshAt
		m := meta
		updated.Broadcast = &m
		return bucketDetected, &updated, updated

	case s.IsLive && isLiveNow:
		updated := *s
		m := meta
		updated.Broadcast = &m
		if updated.NextMediaRefreshAt != nil && !now.Before(*updated.NextMediaRefreshAt) {
			refreshAt := now.Add(t.cfg.MediaRefreshInterval)
			updated.NextMediaRefreshAt = &refreshAt
			return bucketRefresh, &updated, updated
		}
		return bucketContinuing, &updated, updated

	case s.IsLive && !isLiveNow:
		// The snapshot keeps the final broadcast metadata so sinks can
		// compute stream duration; the stored copy is cleared.
		snap := *s
		snap.IsLive = false
		snap.LastOnline = nil
		snap.NextMediaRefreshAt = nil
		updated := snap
		updated.Broadcast = nil
		return bucketEnded, &updated, snap

	default:
		return bucketNone, nil, domain.Streamer{}
	}
}

// NotifyStarting signals sinks that the reconciliation loop is about to begin.
func (t *Tracker) NotifyStarting(ctx context.Context) {
	t.dispatch("service starting", func(sink Sink) error { return sink.ServiceStarting(ctx) })
}

// NotifyStarted signals sinks that the host process finished starting.
func (t *Tracker) NotifyStarted() {
	t.dispatch("service started", func(sink Sink) error { return sink.ServiceStarted() })
}

// NotifyExiting signals sinks that shutdown began; it precedes the final save.
func (t *Tracker) NotifyExiting(ctx context.Context) {
	t.dispatch("service exiting", func(sink Sink) error { return sink.ServiceExiting(ctx) })
}

// NotifyExited signals sinks that shutdown completed.
func (t *Tracker) NotifyExited() {
	t.dispatch("service exited", func(sink Sink) error { return sink.ServiceExited() })
}

// partition splits ids into batches. The batch size is clamped to the hard
// per-query cap even when the configured value was never run through
// config defaulting.
func partition(ids []string, size int) [][]string {
	if size <= 0 || size > config.MaxBatchSize {
		size = config.MaxBatchSize
	}
	var batches [][]string
	for len(ids) > size {
		batches = append(batches, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		batches = append(batches, ids)
	}
	return batches
}
