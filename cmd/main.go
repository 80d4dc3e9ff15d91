package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "campaign-advisor/internal/adapter/http"
	"campaign-advisor/internal/adapter/insight"
	"campaign-advisor/internal/adapter/postgres"
	"campaign-advisor/internal/adapter/usecase"
	"campaign-advisor/internal/config"
	"campaign-advisor/internal/core/port"
	"campaign-advisor/internal/db"
)

// main is the entry point of the campaign advisor. It loads configuration,
// optionally connects to the campaign database (running migrations and
// seeding demo rows when asked), then starts the HTTP server. On receiving
// a termination signal it gracefully shuts down the server.
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
		return
	}

	logger := cfg.Log.New(os.Stdout, slog.String("env", cfg.Env))
	logger.Info("rules loaded",
		slog.Float64("target_cpa", cfg.Thresholds.TargetCPA),
		slog.Float64("high_cpa", cfg.Thresholds.HighCPA()),
		slog.Float64("ctr_min", cfg.Thresholds.CTRMin),
		slog.Float64("roas_increase", cfg.Thresholds.ROASIncrease),
		slog.Float64("roas_decrease", cfg.Thresholds.ROASDecrease),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var stored port.CampaignSource
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		if cfg.Psql.Seed {
			if err = db.Seed(ctx, pool); err != nil {
				logger.Error("seed error", slog.Any("error", err))
			} else {
				logger.Info("demo campaigns seeded")
			}
		}
		stored = postgres.NewCampaignRepository(pool)
	}

	if !cfg.Insight.Enabled() {
		logger.Warn("insight service not configured, lookups will report an error")
	}
	insights := insight.NewClient(cfg.Insight, nil)

	svc := usecase.NewAdvisorUseCase(cfg.Thresholds, stored, insights, logger)

	handler := httpadapter.NewHandler(svc, cfg.HTTP, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err = <-serverErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
