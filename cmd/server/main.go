// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tomtom215/cadence/internal/api"
	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/database"
	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/planner"
	"github.com/tomtom215/cadence/internal/recommend"
	"github.com/tomtom215/cadence/internal/supervisor"
	"github.com/tomtom215/cadence/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is normal outside development.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		logging.Warn().Err(envErr).Msg("Failed to read .env file")
	}

	metrics.SetAppInfo(version, runtime.Version())

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Str("timezone", cfg.Engine.Timezone).
		Int("default_lookback_days", cfg.Engine.DefaultLookbackDays).
		Msg("Starting Cadence")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS_ORIGINS allows any origin in production; set explicit origins")
	}

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Cadence stopped with error")
	}
	logging.Info().Msg("Cadence stopped gracefully")
}

func run(cfg *config.Config) error {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized")

	if cfg.Database.SeedMockData {
		n, err := db.SeedMockData(context.Background(), time.Now())
		if err != nil {
			return err
		}
		logging.Info().Int("posts", n).Msg("Seeded demo channels (SEED_MOCK_DATA=true)")
	}

	var provider planner.DataProvider = db
	if cfg.Database.BreakerTimeout > 0 {
		provider = planner.NewBreakerProvider(db, planner.BreakerConfig{
			Timeout: cfg.Database.BreakerTimeout,
		}, logging.WithComponent("database"))
	}

	p := planner.New(provider, planner.Options{
		Location:            cfg.Engine.Location(),
		DefaultLookbackDays: cfg.Engine.DefaultLookbackDays,
		CacheTTL:            cfg.Engine.CacheTTL,
		Recommend: &recommend.Config{
			MinPostsForFullConfidence: cfg.Engine.MinPostsForFullConfidence,
			MaxSlots:                  cfg.Engine.MaxSlots,
		},
	}, logging.WithComponent("planner"))

	handler := api.NewHandler(db, p, cfg.Server.Timeout)
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(&cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(handler, mw).SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	tree := supervisor.NewSupervisorTree(
		logging.NewSlogLogger(logging.WithComponent("supervisor")),
		supervisor.DefaultTreeConfig(),
	)
	tree.AddDataService(services.NewCheckpointService(db, cfg.Database.CheckpointInterval, logging.WithComponent("database")))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logging.WithComponent("api")))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	err = tree.Serve(ctx)

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
