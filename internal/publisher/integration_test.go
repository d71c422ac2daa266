//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"stream_tracker/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestSink_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	sink, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(sink)

	err = sink.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestSink_StreamsDetected() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-detected",
		RoutingKey: "test-routing-key-detected",
		QueueName:  "test-queue-detected",
	}

	sink, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer sink.Close()

	now := time.Now().UTC().Truncate(time.Millisecond)
	streamers := []domain.Streamer{
		{
			ID:          "1",
			Login:       "alice",
			DisplayName: "Alice",
			IsLive:      true,
			LastOnline:  &now,
			Broadcast: &domain.BroadcastMetadata{
				Title:       "Test Stream",
				GameName:    "Chess",
				ViewerCount: 7,
				StartedAt:   now,
			},
		},
	}

	err = sink.StreamsDetected(s.ctx, streamers)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	var received Notification
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("streams.detected", received.Action)
	s.Require().Len(received.Streamers, 1)
	s.Equal("alice", received.Streamers[0].Login)
	s.True(received.Streamers[0].IsLive)
	s.Equal("Test Stream", received.Streamers[0].Broadcast.Title)
}

func (s *RabbitMQIntegrationSuite) TestSink_StreamError() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-error",
		RoutingKey: "test-routing-key-error",
		QueueName:  "test-queue-error",
	}

	sink, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer sink.Close()

	err = sink.StreamError(s.ctx, "42", "status query failed", context.DeadlineExceeded)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	var received Notification
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("stream.error", received.Action)
	s.Equal("42", received.UserID)
	s.Contains(received.Error, "status query failed")
}

func (s *RabbitMQIntegrationSuite) TestSink_Lifecycle() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-lifecycle",
		RoutingKey: "test-routing-key-lifecycle",
		QueueName:  "test-queue-lifecycle",
	}

	sink, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer sink.Close()

	s.NoError(sink.ServiceStarting(s.ctx))
	s.NoError(sink.ServiceStarted())
	s.NoError(sink.ServiceExiting(s.ctx))
	s.NoError(sink.ServiceExited())

	actions := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		msg := s.consumeMessage(cfg)
		s.Require().NotNil(msg)
		var received Notification
		s.Require().NoError(json.Unmarshal(msg.Body, &received))
		actions = append(actions, received.Action)
	}

	s.Equal([]string{"service.starting", "service.started", "service.exiting", "service.exited"}, actions)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	deadline := time.After(10 * time.Second)
	for {
		msg, ok, err := ch.Get(cfg.QueueName, true)
		s.Require().NoError(err)
		if ok {
			return &msg
		}
		select {
		case <-deadline:
			return nil
		case <-time.After(100 * time.Millisecond):
		}
	}
}
