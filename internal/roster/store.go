// Package roster persists the tracked-streamer roster to a flat JSON file.
package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"stream_tracker/internal/domain"
)

// FileStore is the single-writer checkpoint file for the roster. One mutex
// covers both Load and Save so they never interleave.
type FileStore struct {
	path   string
	mu     sync.Mutex
	logger *slog.Logger
}

func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger.With("component", "roster_store"),
	}
}

// Load reads the persisted roster. A missing, empty, or malformed file yields
// an empty roster rather than an error so startup always succeeds.
func (s *FileStore) Load(ctx context.Context) ([]domain.Streamer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read roster file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var streamers []domain.Streamer
	if err := json.Unmarshal(data, &streamers); err != nil {
		s.logger.Warn("malformed roster file, starting with empty roster",
			"path", s.path,
			"error", err,
		)
		return nil, nil
	}

	return streamers, nil
}

// Save overwrites the checkpoint with the full roster snapshot. The write goes
// through a temp file and rename so a crash mid-save cannot truncate the
// previous checkpoint.
func (s *FileStore) Save(ctx context.Context, streamers []domain.Streamer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	if streamers == nil {
		streamers = []domain.Streamer{}
	}

	data, err := json.MarshalIndent(streamers, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal roster: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp roster file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write roster: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close roster file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace roster file: %w", err)
	}

	return nil
}
