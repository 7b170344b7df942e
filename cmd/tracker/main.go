package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"ad_tracker/internal/adlibrary"
	"ad_tracker/internal/config"
	"ad_tracker/internal/media"
	"ad_tracker/internal/publisher"
	"ad_tracker/internal/scheduler"
	"ad_tracker/internal/service"
	"ad_tracker/internal/storage/postgres"
	"ad_tracker/internal/uploader"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	syncSource := flag.String("sync-source", "", "run one cycle for a single source and exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	if err := postgres.Migrate(cfg.Database.URL()); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	var events service.Publisher
	if !cfg.RabbitMQ.Disabled {
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
		events = rabbitMQ
	}

	brandStore := postgres.NewBrandStore(db)
	adStore := postgres.NewAdStore(db)

	libraryClient := adlibrary.New(adlibrary.Config{
		BaseURL:        cfg.API.BaseURL,
		Token:          cfg.API.Token,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.MaxAttempts,
		InitialBackoff: cfg.API.InitialBackoff,
		MaxBackoff:     cfg.API.MaxBackoff,
	}, logger)

	mediaUploader := uploader.New(uploader.Config{
		BaseURL:      cfg.Uploader.BaseURL,
		APIKey:       cfg.Uploader.APIKey,
		ProbeTimeout: cfg.Uploader.ProbeTimeout,
		ImageTimeout: cfg.Uploader.ImageTimeout,
		VideoTimeout: cfg.Uploader.VideoTimeout,
	}, logger)

	trackService := service.NewTrackService(
		libraryClient,
		brandStore,
		adStore,
		events,
		logger,
		cfg.Tracking,
		nil,
	)

	mediaWorker := media.NewWorker(
		adStore,
		mediaUploader,
		events,
		logger,
		cfg.Media,
		nil,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *syncSource != "" {
		if _, err := trackService.SyncSource(ctx, *syncSource); err != nil {
			logger.Error("manual sync failed", "source_id", *syncSource, "error", err)
			os.Exit(1)
		}
		return
	}

	trackingSched := scheduler.New(trackService, cfg.Tracking.Interval, logger)
	mediaSched := scheduler.New(mediaWorker, cfg.Media.Interval, logger)

	logger.Info("starting ad tracker",
		"tracking_interval", cfg.Tracking.Interval,
		"media_interval", cfg.Media.Interval,
		"page_size", cfg.Tracking.PageSize,
		"max_pages", cfg.Tracking.MaxPages,
	)

	if err := trackingSched.Start(ctx); err != nil {
		logger.Error("failed to start tracking scheduler", "error", err)
		os.Exit(1)
	}
	if err := mediaSched.Start(ctx); err != nil {
		logger.Error("failed to start media scheduler", "error", err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig)

	trackingSched.Stop()
	mediaSched.Stop()

	stats := mediaWorker.Stats()
	logger.Info("media worker totals",
		"processed", stats.Processed,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"images", stats.Images,
		"videos", stats.Videos,
	)
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
