// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

// Command seed fills or clears the restaurant fixtures.
//
//	seed up [--count N] [--seed S]   create categories, fixture users and restaurants
//	seed down                        delete every restaurant and what references it
//
// It reads the same configuration as the server (DUCKDB_PATH and friends).
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tomtom215/forkful/internal/config"
	"github.com/tomtom215/forkful/internal/database"
	"github.com/tomtom215/forkful/internal/logging"
)

var errUsage = errors.New("usage: seed up [--count N] [--seed S] | seed down")

func main() {
	if err := newCommand(config.Load).Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		logging.Fatal().Err(err).Msg("Seeding failed")
	}
}

// newCommand builds the seed command tree. loadConfig is called once the
// subcommand and its flags have been parsed.
func newCommand(loadConfig func() (*config.Config, error)) *cli.Command {
	return &cli.Command{
		Name:      "seed",
		Usage:     "Fill or clear the Forkful restaurant fixtures",
		UsageText: "seed <up|down> [options]",
		Commands: []*cli.Command{
			getUpCommand(loadConfig),
			getDownCommand(loadConfig),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return fmt.Errorf("%w: unknown command %q", errUsage, cmd.Args().First())
			}
			return errUsage
		},
	}
}

func getUpCommand(loadConfig func() (*config.Config, error)) *cli.Command {
	return &cli.Command{
		Name:      "up",
		Usage:     "Create categories, fixture users and restaurants",
		UsageText: "seed up [--count N] [--seed S]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "count",
				Value: database.DefaultSeedRestaurants,
				Usage: "Number of restaurants to create",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Random seed; the same seed produces the same restaurants (default: current time)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			count := cmd.Int("count")
			if count < 1 {
				return fmt.Errorf("%w: --count must be at least 1, got %d", errUsage, count)
			}
			seed := cmd.Int64("seed")
			if !cmd.IsSet("seed") {
				seed = time.Now().UnixNano()
			}

			cfg, err := setup(loadConfig)
			if err != nil {
				return err
			}
			logging.Info().Int("count", count).Int64("seed", seed).Msg("Seeding restaurants")
			return run(ctx, cfg, "up", count, seed)
		},
	}
}

func getDownCommand(loadConfig func() (*config.Config, error)) *cli.Command {
	return &cli.Command{
		Name:      "down",
		Usage:     "Delete every restaurant with its favorites, likes and comments",
		UsageText: "seed down",
		Action: func(ctx context.Context, _ *cli.Command) error {
			cfg, err := setup(loadConfig)
			if err != nil {
				return err
			}
			return run(ctx, cfg, "down", 0, 0)
		},
	}
}

// setup loads configuration and points the global logger at it.
func setup(loadConfig func() (*config.Config, error)) (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.Init(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Caller:  cfg.Logging.Caller,
		Service: logging.ServiceName + "-seed",
	})
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, direction string, count int, seed int64) error {
	if direction != "up" && direction != "down" {
		return errUsage
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if direction == "down" {
		n, err := db.UnseedRestaurants(ctx)
		if err != nil {
			return err
		}
		logging.Info().Int64("deleted", n).Msg("Restaurants removed")
		return nil
	}

	if err := db.SeedCategories(ctx); err != nil {
		return err
	}
	if _, err := db.SeedUsers(ctx); err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // fixture data
	if _, err := db.SeedRestaurants(ctx, rng, count); err != nil {
		return err
	}
	return nil
}
