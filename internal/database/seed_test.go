// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package database

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/tomtom215/forkful/internal/database/query"
)

func TestSeedImageURL(t *testing.T) {
	t.Parallel()

	want := "https://loremflickr.com/320/240/restaurant,food/?lock=7"
	if got := SeedImageURL(7); got != want {
		t.Errorf("SeedImageURL(7) = %q, want %q", got, want)
	}
}

func TestSeedRestaurants_NoCategories(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.SeedRestaurants(context.Background(), rand.New(rand.NewSource(1)), 5)
	if !errors.Is(err, ErrNoCategories) {
		t.Errorf("SeedRestaurants() error = %v, want ErrNoCategories", err)
	}
}

func TestSeedAndUnseedRestaurants(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.SeedCategories(ctx); err != nil {
		t.Fatalf("SeedCategories() error = %v", err)
	}
	// Seeding categories twice must not duplicate them.
	if err := db.SeedCategories(ctx); err != nil {
		t.Fatalf("second SeedCategories() error = %v", err)
	}
	categories, err := db.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}
	if len(categories) != len(DefaultCategories) {
		t.Fatalf("categories = %d, want %d", len(categories), len(DefaultCategories))
	}

	n, err := db.SeedRestaurants(ctx, rand.New(rand.NewSource(42)), DefaultSeedRestaurants)
	if err != nil {
		t.Fatalf("SeedRestaurants() error = %v", err)
	}
	if n != DefaultSeedRestaurants {
		t.Errorf("SeedRestaurants() = %d, want %d", n, DefaultSeedRestaurants)
	}

	restaurants, err := db.ListRestaurants(ctx, query.RestaurantFilter{Limit: 100})
	if err != nil {
		t.Fatalf("ListRestaurants() error = %v", err)
	}
	if len(restaurants) != DefaultSeedRestaurants {
		t.Fatalf("restaurants = %d, want %d", len(restaurants), DefaultSeedRestaurants)
	}
	for _, r := range restaurants {
		if r.Name == "" || r.Description == "" {
			t.Errorf("restaurant %d has empty name or description", r.ID)
		}
		if r.OpeningHours != SeedOpeningHours {
			t.Errorf("restaurant %d opening hours = %q, want %q", r.ID, r.OpeningHours, SeedOpeningHours)
		}
		if !strings.HasPrefix(r.Image, "https://loremflickr.com/320/240/restaurant,food/?lock=") {
			t.Errorf("restaurant %d image = %q", r.ID, r.Image)
		}
		if r.Category == nil {
			t.Errorf("restaurant %d has no category", r.ID)
		}
	}

	deleted, err := db.UnseedRestaurants(ctx)
	if err != nil {
		t.Fatalf("UnseedRestaurants() error = %v", err)
	}
	if deleted != DefaultSeedRestaurants {
		t.Errorf("UnseedRestaurants() = %d, want %d", deleted, DefaultSeedRestaurants)
	}
	total, err := db.CountRestaurants(ctx, query.RestaurantFilter{})
	if err != nil {
		t.Fatalf("CountRestaurants() error = %v", err)
	}
	if total != 0 {
		t.Errorf("restaurants after unseed = %d, want 0", total)
	}
}

func TestSeedMockData(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(7))

	if err := db.SeedMockData(ctx, rng); err != nil {
		t.Fatalf("SeedMockData() error = %v", err)
	}

	top, err := db.TopFavorited(ctx, 10)
	if err != nil {
		t.Fatalf("TopFavorited() error = %v", err)
	}
	if len(top) == 0 {
		t.Error("TopFavorited() is empty after mock data")
	}

	comments, err := db.LatestComments(ctx, 10)
	if err != nil {
		t.Fatalf("LatestComments() error = %v", err)
	}
	if len(comments) != 10 {
		t.Errorf("LatestComments() returned %d, want 10", len(comments))
	}

	creds, err := db.GetCredentialsByEmail(ctx, DefaultUsers[0].Email)
	if err != nil {
		t.Fatalf("GetCredentialsByEmail() error = %v", err)
	}
	if !creds.User.IsAdmin {
		t.Errorf("%s is not an admin", DefaultUsers[0].Email)
	}

	// A second run leaves existing data alone.
	if err := db.SeedMockData(ctx, rng); err != nil {
		t.Fatalf("second SeedMockData() error = %v", err)
	}
	total, err := db.CountRestaurants(ctx, query.RestaurantFilter{})
	if err != nil {
		t.Fatalf("CountRestaurants() error = %v", err)
	}
	if total != DefaultSeedRestaurants {
		t.Errorf("restaurants = %d, want %d", total, DefaultSeedRestaurants)
	}
}

func TestSeedRestaurants_SameSeedSameRows(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.SeedCategories(ctx); err != nil {
		t.Fatalf("SeedCategories() error = %v", err)
	}

	type row struct {
		name, tel, address, description, image string
		categoryID                             int64
	}
	seedRows := func() []row {
		t.Helper()
		if _, err := db.SeedRestaurants(ctx, rand.New(rand.NewSource(99)), 5); err != nil {
			t.Fatalf("SeedRestaurants() error = %v", err)
		}
		restaurants, err := db.ListRestaurants(ctx, query.RestaurantFilter{Limit: 10})
		if err != nil {
			t.Fatalf("ListRestaurants() error = %v", err)
		}
		rows := make([]row, 0, len(restaurants))
		for _, r := range restaurants {
			rows = append(rows, row{r.Name, r.Tel, r.Address, r.Description, r.Image, r.CategoryID})
		}
		if _, err := db.UnseedRestaurants(ctx); err != nil {
			t.Fatalf("UnseedRestaurants() error = %v", err)
		}
		return rows
	}

	first := seedRows()
	second := seedRows()
	if len(first) != 5 || len(second) != 5 {
		t.Fatalf("seeded %d and %d rows, want 5 each", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("row %d differs between runs with the same seed:\n  %+v\n  %+v", i, first[i], second[i])
		}
	}
}
