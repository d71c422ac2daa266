package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"stream_tracker/internal/domain"
)

// StatusSource answers batched liveness queries. IDs absent from the result
// are offline.
type StatusSource interface {
	Streams(ctx context.Context, ids []string) (map[string]domain.BroadcastMetadata, error)
}

// UserDirectory resolves a login name to a user profile, used only when
// adding a user to the roster.
type UserDirectory interface {
	UserByLogin(ctx context.Context, login string) (*domain.Streamer, error)
}

// RosterStore checkpoints the roster between process runs.
type RosterStore interface {
	Load(ctx context.Context) ([]domain.Streamer, error)
	Save(ctx context.Context, streamers []domain.Streamer) error
}

// Sink consumes tracker notifications. Implementations own how transitions
// become visible output; the tracker only guarantees each call fires at most
// once per tick per category, and that one sink's failure never blocks the
// others.
type Sink interface {
	// StreamsDetected carries streamers that transitioned offline -> live,
	// including streamers found live on the first tick after a restart whose
	// checkpoint said they were offline.
	StreamsDetected(ctx context.Context, streamers []domain.Streamer) error
	// StreamsEnded carries streamers that transitioned live -> offline. Each
	// entry still holds the final broadcast metadata of the ended stream.
	StreamsEnded(ctx context.Context, streamers []domain.Streamer) error
	// StreamsContinuing carries streamers live on consecutive ticks.
	StreamsContinuing(ctx context.Context, streamers []domain.Streamer) error
	// MediaRefreshDue carries continuing streamers whose media-refresh timer
	// elapsed this tick.
	MediaRefreshDue(ctx context.Context, streamers []domain.Streamer) error

	UserAdded(ctx context.Context, streamer domain.Streamer) error
	UserRemoved(ctx context.Context, streamer domain.Streamer) error

	// StreamError reports a per-streamer reconciliation failure.
	StreamError(ctx context.Context, id string, msg string, err error) error

	ServiceStarting(ctx context.Context) error
	ServiceStarted() error
	ServiceExiting(ctx context.Context) error
	ServiceExited() error
}
