// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package database

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/forkful/internal/database/query"
	"github.com/tomtom215/forkful/internal/logging"
)

// DefaultSeedRestaurants is the number of restaurants inserted by the seeder.
const DefaultSeedRestaurants = 50

// SeedOpeningHours is the opening time given to every seeded restaurant.
const SeedOpeningHours = "08:00"

// DefaultCategories are created before restaurants are seeded.
var DefaultCategories = []string{
	"中式料理",
	"日本料理",
	"義大利料理",
	"墨西哥料理",
	"素食料理",
	"美式料理",
	"複合式料理",
}

// SeedUser is a fixture account.
type SeedUser struct {
	Name    string
	Email   string
	IsAdmin bool
}

// DefaultSeedPassword is the password of every fixture account.
const DefaultSeedPassword = "12345678"

// DefaultUsers are the fixture accounts created by SeedMockData.
var DefaultUsers = []SeedUser{
	{Name: "root", Email: "root@example.com", IsAdmin: true},
	{Name: "user1", Email: "user1@example.com"},
	{Name: "user2", Email: "user2@example.com"},
}

// SeedImageURL returns the placeholder image for lock value 1..100.
func SeedImageURL(lock int) string {
	return fmt.Sprintf("https://loremflickr.com/320/240/restaurant,food/?lock=%d", lock)
}

// SeedCategories makes sure every name in DefaultCategories exists.
func (db *DB) SeedCategories(ctx context.Context) error {
	for _, name := range DefaultCategories {
		if _, err := db.EnsureCategory(ctx, name); err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
	}
	return nil
}

// SeedUsers creates the DefaultUsers accounts and returns their IDs.
func (db *DB) SeedUsers(ctx context.Context) ([]int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultSeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	ids := make([]int64, 0, len(DefaultUsers))
	for _, u := range DefaultUsers {
		id, err := db.EnsureUser(ctx, u.Name, u.Email, string(hash), u.IsAdmin)
		if err != nil {
			return nil, fmt.Errorf("failed to seed users: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SeedRestaurants inserts count restaurants with fake names, phone numbers,
// addresses and descriptions. Each gets a random image lock in 1..100 and a
// random existing category. The text fields draw from a faker source seeded
// by rng, so the same seed produces the same rows. Returns ErrNoCategories
// when the categories table is empty. All rows are inserted in one
// transaction.
func (db *DB) SeedRestaurants(ctx context.Context, rng *rand.Rand, count int) (int, error) {
	categories, err := db.ListCategories(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to seed restaurants: %w", err)
	}
	if len(categories) == 0 {
		return 0, ErrNoCategories
	}

	seedFaker(rng)

	err = exec(db, "seed", "restaurants", func() error {
		tx, err := db.conn.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin seed transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO restaurants (name, tel, address, opening_hours, image, description, category_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare seed insert: %w", err)
		}
		defer closeWithLog(stmt, "seed statement")

		for i := 0; i < count; i++ {
			category := categories[rng.Intn(len(categories))]
			if _, err := stmt.ExecContext(ctx,
				faker.Name(),
				faker.Phonenumber(),
				faker.GetRealAddress().Address,
				SeedOpeningHours,
				SeedImageURL(rng.Intn(100)+1),
				faker.Paragraph(),
				category.ID,
			); err != nil {
				return fmt.Errorf("failed to insert seed restaurant %d: %w", i+1, err)
			}
		}

		return tx.Commit()
	})
	if err != nil {
		return 0, err
	}

	logging.Info().Int("count", count).Int("categories", len(categories)).Msg("Seeded restaurants")
	return count, nil
}

// seedFaker points faker's package-level source at a stream derived from rng.
func seedFaker(rng *rand.Rand) {
	faker.SetRandomSource(faker.NewSafeSource(rand.NewSource(rng.Int63()))) //nolint:gosec // fixture data
}

// UnseedRestaurants deletes every restaurant together with its favorites,
// likes and comments, and returns the number of restaurants removed.
func (db *DB) UnseedRestaurants(ctx context.Context) (int64, error) {
	return execute(db, "unseed", "restaurants", func() (int64, error) {
		tx, err := db.conn.BeginTx(ctx, nil)
		if err != nil {
			return 0, fmt.Errorf("failed to begin unseed transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		for _, table := range []string{"favorites", "likes", "comments"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return 0, fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM restaurants`)
		if err != nil {
			return 0, fmt.Errorf("failed to delete restaurants: %w", err)
		}
		deleted, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read deleted row count: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return 0, fmt.Errorf("failed to commit unseed: %w", err)
		}
		return deleted, nil
	})
}

// SeedMockData fills an empty database with categories, fixture users,
// DefaultSeedRestaurants restaurants and a sprinkling of favorites, likes and
// comments so that the feeds and the top ranking have content. It does
// nothing when restaurants already exist.
func (db *DB) SeedMockData(ctx context.Context, rng *rand.Rand) error {
	total, err := db.CountRestaurants(ctx, query.RestaurantFilter{})
	if err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if total > 0 {
		logging.Info().Int64("restaurants", total).Msg("Database already has restaurants, skipping mock data")
		return nil
	}

	if err := db.SeedCategories(ctx); err != nil {
		return err
	}
	userIDs, err := db.SeedUsers(ctx)
	if err != nil {
		return err
	}
	if _, err := db.SeedRestaurants(ctx, rng, DefaultSeedRestaurants); err != nil {
		return err
	}

	restaurants, err := db.ListRestaurants(ctx, query.RestaurantFilter{Limit: DefaultSeedRestaurants})
	if err != nil {
		return fmt.Errorf("failed to list seeded restaurants: %w", err)
	}

	for _, userID := range userIDs {
		for _, idx := range rng.Perm(len(restaurants))[:min(8, len(restaurants))] {
			restaurantID := restaurants[idx].ID
			if err := db.AddFavorite(ctx, userID, restaurantID); err != nil {
				return fmt.Errorf("failed to seed favorites: %w", err)
			}
			if rng.Intn(2) == 0 {
				if err := db.AddLike(ctx, userID, restaurantID); err != nil {
					return fmt.Errorf("failed to seed likes: %w", err)
				}
			}
			if _, err := db.AddComment(ctx, userID, restaurantID, faker.Sentence()); err != nil {
				return fmt.Errorf("failed to seed comments: %w", err)
			}
		}
	}

	logging.Info().Int("users", len(userIDs)).Int("restaurants", len(restaurants)).Msg("Mock data seeded")
	return nil
}
