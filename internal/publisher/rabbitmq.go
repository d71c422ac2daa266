// Package publisher is an AMQP notification sink: every tracker notification
// becomes one JSON message on a durable exchange.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"stream_tracker/internal/domain"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// Notification is the wire envelope for every sink event.
type Notification struct {
	Action    string            `json:"action"`
	Streamers []domain.Streamer `json:"streamers,omitempty"`
	UserID    string            `json:"user_id,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

func (r *RabbitMQ) publish(ctx context.Context, n Notification) error {
	n.Timestamp = time.Now().UTC()

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", n.Action, err)
	}

	r.logger.Debug("published notification",
		"action", n.Action,
		"streamers", len(n.Streamers),
	)

	return nil
}

func (r *RabbitMQ) StreamsDetected(ctx context.Context, streamers []domain.Streamer) error {
	return r.publish(ctx, Notification{Action: "streams.detected", Streamers: streamers})
}

func (r *RabbitMQ) StreamsEnded(ctx context.Context, streamers []domain.Streamer) error {
	return r.publish(ctx, Notification{Action: "streams.ended", Streamers: streamers})
}

func (r *RabbitMQ) StreamsContinuing(ctx context.Context, streamers []domain.Streamer) error {
	return r.publish(ctx, Notification{Action: "streams.continuing", Streamers: streamers})
}

func (r *RabbitMQ) MediaRefreshDue(ctx context.Context, streamers []domain.Streamer) error {
	return r.publish(ctx, Notification{Action: "streams.media_refresh", Streamers: streamers})
}

func (r *RabbitMQ) UserAdded(ctx context.Context, streamer domain.Streamer) error {
	return r.publish(ctx, Notification{Action: "user.added", Streamers: []domain.Streamer{streamer}})
}

func (r *RabbitMQ) UserRemoved(ctx context.Context, streamer domain.Streamer) error {
	return r.publish(ctx, Notification{Action: "user.removed", Streamers: []domain.Streamer{streamer}})
}

func (r *RabbitMQ) StreamError(ctx context.Context, id string, msg string, err error) error {
	return r.publish(ctx, Notification{
		Action: "stream.error",
		UserID: id,
		Error:  fmt.Sprintf("%s: %v", msg, err),
	})
}

func (r *RabbitMQ) ServiceStarting(ctx context.Context) error {
	return r.publish(ctx, Notification{Action: "service.starting"})
}

func (r *RabbitMQ) ServiceStarted() error {
	return r.publish(context.Background(), Notification{Action: "service.started"})
}

func (r *RabbitMQ) ServiceExiting(ctx context.Context) error {
	return r.publish(ctx, Notification{Action: "service.exiting"})
}

func (r *RabbitMQ) ServiceExited() error {
	return r.publish(context.Background(), Notification{Action: "service.exited"})
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
