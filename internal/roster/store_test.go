package roster

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"stream_tracker/internal/domain"
)

type FileStoreTestSuite struct {
	suite.Suite
	ctx    context.Context
	path   string
	store  *FileStore
	logger *slog.Logger
}

func (s *FileStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), "roster.json")
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.store = NewFileStore(s.path, s.logger)
}

func TestFileStoreTestSuite(t *testing.T) {
	suite.Run(t, new(FileStoreTestSuite))
}

func (s *FileStoreTestSuite) TestLoad_MissingFile() {
	streamers, err := s.store.Load(s.ctx)

	s.NoError(err)
	s.Empty(streamers)
}

func (s *FileStoreTestSuite) TestLoad_EmptyFile() {
	s.Require().NoError(os.WriteFile(s.path, nil, 0o644))

	streamers, err := s.store.Load(s.ctx)

	s.NoError(err)
	s.Empty(streamers)
}

func (s *FileStoreTestSuite) TestLoad_MalformedFileIsNotFatal() {
	s.Require().NoError(os.WriteFile(s.path, []byte("{not json"), 0o644))

	streamers, err := s.store.Load(s.ctx)

	s.NoError(err)
	s.Empty(streamers)
}

func (s *FileStoreTestSuite) TestRoundTrip() {
	now := time.Now().UTC().Truncate(time.Second)
	refreshAt := now.Add(15 * time.Minute)

	streamers := []domain.Streamer{
		{
			ID:                 "1",
			Login:              "alice",
			DisplayName:        "Alice",
			ProfileImageURL:    "https://img/alice.png",
			IsLive:             true,
			LastOnline:         &now,
			NextMediaRefreshAt: &refreshAt,
			Broadcast: &domain.BroadcastMetadata{
				Title:       "speedrun",
				GameID:      "12345",
				GameName:    "Celeste",
				ViewerCount: 420,
				StartedAt:   now.Add(-time.Hour),
			},
		},
		{
			ID:    "2",
			Login: "bob",
		},
	}

	s.Require().NoError(s.store.Save(s.ctx, streamers))

	loaded, err := s.store.Load(s.ctx)

	s.NoError(err)
	s.Equal(streamers, loaded)
}

func (s *FileStoreTestSuite) TestSave_OverwritesPrevious() {
	s.Require().NoError(s.store.Save(s.ctx, []domain.Streamer{{ID: "1", Login: "alice"}}))
	s.Require().NoError(s.store.Save(s.ctx, []domain.Streamer{{ID: "2", Login: "bob"}}))

	loaded, err := s.store.Load(s.ctx)

	s.NoError(err)
	s.Require().Len(loaded, 1)
	s.Equal("2", loaded[0].ID)
}

func (s *FileStoreTestSuite) TestSave_NilRosterWritesEmptyList() {
	s.Require().NoError(s.store.Save(s.ctx, nil))

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.JSONEq("[]", string(data))
}

func (s *FileStoreTestSuite) TestSave_CancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := s.store.Save(ctx, []domain.Streamer{{ID: "1"}})

	s.ErrorIs(err, context.Canceled)
}
