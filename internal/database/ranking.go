// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/forkful/internal/database/query"
	"github.com/tomtom215/forkful/internal/models"
)

// TopFavorited returns up to limit restaurants that have at least one
// favorite, ordered by favorite count descending. Equal counts are ordered by
// ascending restaurant ID so the ranking is stable between calls.
// IsFavorited is left false; viewer state is applied by the caller.
func (db *DB) TopFavorited(ctx context.Context, limit int) ([]models.RestaurantSummary, error) {
	q := fmt.Sprintf(`
		SELECT %s, COUNT(f.user_id) AS favorited_count
		FROM restaurants r
		JOIN favorites f ON f.restaurant_id = r.id
		GROUP BY r.id, r.name, r.description, r.image
		ORDER BY favorited_count DESC, r.id ASC
		LIMIT ?`, summaryColumns)

	return execute(db, "top_favorited", "favorites", func() ([]models.RestaurantSummary, error) {
		return db.querySummaries(ctx, q, limit)
	})
}

// RandomRestaurants returns up to limit restaurants in random order,
// skipping the IDs in exclude. Each row carries its true favorite count.
func (db *DB) RandomRestaurants(ctx context.Context, limit int, exclude []int64) ([]models.RestaurantSummary, error) {
	whereClause, args := query.NewWhereBuilder().AddExcludedIDs("r.id", exclude).BuildWithPrefix()
	q := fmt.Sprintf(`
		SELECT %s,
			(SELECT COUNT(*) FROM favorites f WHERE f.restaurant_id = r.id) AS favorited_count
		FROM restaurants r
		%s
		ORDER BY random()
		LIMIT ?`, summaryColumns, whereClause)
	args = append(args, limit)

	return execute(db, "random_fill", "restaurants", func() ([]models.RestaurantSummary, error) {
		return db.querySummaries(ctx, q, args...)
	})
}

func (db *DB) querySummaries(ctx context.Context, q string, args ...interface{}) ([]models.RestaurantSummary, error) {
	rows, err := db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurant summaries: %w", err)
	}
	defer closeWithLog(rows, "summary rows")

	summaries := []models.RestaurantSummary{}
	for rows.Next() {
		rs, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant summary: %w", err)
		}
		summaries = append(summaries, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restaurant summaries: %w", err)
	}
	return summaries, nil
}
