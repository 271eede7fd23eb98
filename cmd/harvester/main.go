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

	"parts_harvester/internal/config"
	"parts_harvester/internal/fetch"
	"parts_harvester/internal/publisher"
	"parts_harvester/internal/scheduler"
	"parts_harvester/internal/service"
	"parts_harvester/internal/source/autoplius"
	"parts_harvester/internal/source/mlauto"
	"parts_harvester/internal/source/mobilede"
	"parts_harvester/internal/source/rrr"
	"parts_harvester/internal/storage/postgres"
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

	// Initialize RabbitMQ publisher
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

	// Initialize stores
	partStore := postgres.NewPartStore(db)
	stateStore := postgres.NewHarvestStateStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize platform registry
	fetchClient := fetch.New(cfg.Fetch, logger)
	platforms := []service.Platform{
		rrr.New(cfg.RRR, fetchClient, cfg.Harvest.BranchWorkers, logger),
		mlauto.New(logger),
		autoplius.New(logger),
		mobilede.New(logger),
	}

	harvestService := service.NewHarvestService(
		platforms,
		partStore,
		stateStore,
		txManager,
		rabbitMQ,
		logger,
		cfg.Harvest,
	)

	sched := scheduler.NewScheduler(harvestService, cfg.Harvest.Interval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting parts harvester",
		"platforms", len(platforms),
		"interval", cfg.Harvest.Interval,
		"platform_workers", cfg.Harvest.PlatformWorkers,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
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
