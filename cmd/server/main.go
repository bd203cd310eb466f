// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	mathrand "math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/forkful/internal/api"
	"github.com/tomtom215/forkful/internal/auth"
	"github.com/tomtom215/forkful/internal/cache"
	"github.com/tomtom215/forkful/internal/config"
	"github.com/tomtom215/forkful/internal/database"
	"github.com/tomtom215/forkful/internal/logging"
	"github.com/tomtom215/forkful/internal/supervisor"
	"github.com/tomtom215/forkful/internal/supervisor/services"
)

// shutdownTimeout bounds how long in-flight requests may run after SIGTERM.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("environment", cfg.Server.Environment).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Forkful")

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.SeedMockData {
		logging.Info().Msg("Mock data seeding enabled (SEED_MOCK_DATA=true)")
		rng := mathrand.New(mathrand.NewSource(time.Now().UnixNano())) //nolint:gosec // fixture data
		if err := db.SeedMockData(ctx, rng); err != nil {
			return fmt.Errorf("failed to seed mock data: %w", err)
		}
	}

	if err := ensureJWTSecret(cfg); err != nil {
		return err
	}
	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT manager: %w", err)
	}

	categories := cache.NewCategoryCache(db, cfg.Cache.CategoryTTL)
	handler := api.NewHandler(db, categories, cfg, jwtManager)
	router := api.NewRouter(handler, auth.NewMiddleware(jwtManager),
		api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}

	if cfg.Cache.RefreshSchedule != "" {
		refresher, err := services.NewCategoryRefresherService(categories, cfg.Cache.RefreshSchedule, 0)
		if err != nil {
			return err
		}
		tree.AddDataService(refresher)
	} else {
		logging.Info().Msg("Scheduled category refresh disabled (CATEGORY_REFRESH_SCHEDULE empty)")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}

	if unstopped, err := tree.UnstoppedServiceReport(); err == nil {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", serveErr)
	}
	return nil
}

// ensureJWTSecret fills in a random signing secret outside production so the
// server can start without configuration. Tokens signed with it do not
// survive a restart.
func ensureJWTSecret(cfg *config.Config) error {
	if cfg.Security.JWTSecret != "" {
		return nil
	}
	if cfg.IsProduction() {
		return errors.New("JWT_SECRET is required in production")
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	cfg.Security.JWTSecret = base64.RawURLEncoding.EncodeToString(buf)
	logging.Warn().Msg("JWT_SECRET not set, using an ephemeral secret; tokens will not survive a restart")
	return nil
}
