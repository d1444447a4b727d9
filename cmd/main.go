package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adpace/internal/adapter/csvimport"
	httpadapter "adpace/internal/adapter/http"
	"adpace/internal/adapter/postgres"
	"adpace/internal/adapter/usecase"
	"adpace/internal/config"
	"adpace/internal/core/port"
	"adpace/internal/db"
	"adpace/internal/scheduler"
	"adpace/internal/telemetry"
)

// main is the entry point of the budget service. It loads configuration,
// optionally runs database migrations and demo seeding, initializes the
// database pool, repositories and background jobs, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo campaigns seeded")
		}
	}

	repo := postgres.NewCampaignRepository(pool)
	svc := usecase.NewBudgetUseCase(repo)
	metrics := telemetry.New(nil)

	var importer port.SheetImporter
	if cfg.Import.Dir != "" {
		imp := csvimport.NewImporter(cfg.Import.Dir, svc, metrics, logger)
		importer = imp

		// Import once on startup, then keep following file changes when
		// watching is enabled.
		go func() {
			if _, err := imp.Run(ctx); err != nil {
				logger.Error("startup sheet import error", slog.Any("error", err))
			}
		}()
		if cfg.Import.Watch {
			watcher := csvimport.NewWatcher(cfg.Import.Dir, imp, logger)
			go func() {
				if err := watcher.Watch(ctx); err != nil {
					logger.Error("sheet watcher error", slog.Any("error", err))
				}
			}()
		}
	}

	sweeper := scheduler.NewSweeper(svc, cfg.Alerts.SweepSchedule, metrics, logger)
	if err = sweeper.Start(ctx); err != nil {
		logger.Error("alert sweeper error", slog.Any("error", err))
	}

	handler := httpadapter.NewHandler(svc, importer, metrics, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
