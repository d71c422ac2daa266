package domain

import (
	"errors"
	"time"
)

var (
	// ErrUserNotFound means the login could not be resolved upstream.
	ErrUserNotFound = errors.New("user not found")
	// ErrAlreadyTracked means the resolved user is already on the roster.
	ErrAlreadyTracked = errors.New("user already tracked")
	// ErrNotTracked means no roster entry matched the login.
	ErrNotTracked = errors.New("user not tracked")
)

// Streamer is one tracked broadcast account. The roster keyed by ID is the
// single source of truth for "is this user tracked".
type Streamer struct {
	ID                 string             `json:"id"`
	Login              string             `json:"login"` // case-insensitive alternate key
	DisplayName        string             `json:"display_name"`
	ProfileImageURL    string             `json:"profile_image_url"`
	IsLive             bool               `json:"is_live"`
	LastOnline         *time.Time         `json:"last_online,omitempty"`
	NextMediaRefreshAt *time.Time         `json:"next_media_refresh_at,omitempty"`
	Broadcast          *BroadcastMetadata `json:"broadcast,omitempty"` // present only while live
}

// BroadcastMetadata describes the current stream of a live streamer.
type BroadcastMetadata struct {
	Title       string    `json:"title"`
	GameID      string    `json:"game_id"`
	GameName    string    `json:"game_name"`
	ViewerCount int       `json:"viewer_count"`
	StartedAt   time.Time `json:"started_at"`
}
