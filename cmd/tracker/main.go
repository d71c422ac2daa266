package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"stream_tracker/internal/config"
	"stream_tracker/internal/publisher"
	"stream_tracker/internal/roster"
	"stream_tracker/internal/scheduler"
	"stream_tracker/internal/service"
	"stream_tracker/internal/source/helix"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	// Initialize RabbitMQ notification sink
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Initialize roster checkpoint store
	store := roster.NewFileStore(cfg.Roster.Path, logger)

	// Initialize Helix client (status source + user directory)
	helixClient := helix.New(helix.Config{
		BaseURL:        cfg.Twitch.BaseURL,
		AuthURL:        cfg.Twitch.AuthURL,
		ClientID:       cfg.Twitch.ClientID,
		ClientSecret:   cfg.Twitch.ClientSecret,
		Timeout:        cfg.Twitch.Timeout,
		MaxAttempts:    cfg.Twitch.Retry.MaxAttempts,
		InitialBackoff: cfg.Twitch.Retry.InitialBackoff,
		MaxBackoff:     cfg.Twitch.Retry.MaxBackoff,
	}, logger)

	// Create reconciliation engine
	tracker := service.New(
		helixClient,
		helixClient,
		store,
		cfg.Poll,
		logger,
	)

	sched := scheduler.New(tracker, []service.Sink{rabbitMQ}, cfg.Poll.Interval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Operator surface for add/remove
	admin := newAdminServer(cfg.Admin.Addr, tracker, logger)
	go func() {
		if err := admin.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("admin server error", "error", err)
			cancel()
		}
	}()
	defer admin.Shutdown(context.Background())

	logger.Info("starting stream tracker",
		"interval", cfg.Poll.Interval,
		"batch_size", cfg.Poll.BatchSize,
		"roster", cfg.Roster.Path,
	)

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
