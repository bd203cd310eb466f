// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/forkful/internal/models"
)

// LatestRestaurants returns the newest restaurants with their categories.
// Rows created in the same instant are ordered by descending ID.
func (db *DB) LatestRestaurants(ctx context.Context, limit int) ([]models.Restaurant, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM restaurants r
		LEFT JOIN categories c ON c.id = r.category_id
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT ?`, restaurantWithCategoryColumns)

	return execute(db, "latest", "restaurants", func() ([]models.Restaurant, error) {
		rows, err := db.conn.QueryContext(ctx, q, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to query latest restaurants: %w", err)
		}
		defer closeWithLog(rows, "restaurant rows")

		restaurants := make([]models.Restaurant, 0, limit)
		for rows.Next() {
			r, err := scanRestaurantWithCategory(rows)
			if err != nil {
				return nil, fmt.Errorf("failed to scan restaurant: %w", err)
			}
			restaurants = append(restaurants, r)
		}
		return restaurants, rows.Err()
	})
}

// LatestComments returns the newest comments, each with its author and restaurant.
func (db *DB) LatestComments(ctx context.Context, limit int) ([]models.Comment, error) {
	q := fmt.Sprintf(`
		SELECT %s, r.id, r.name, r.description, r.image
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		LEFT JOIN restaurants r ON r.id = c.restaurant_id
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT ?`, commentWithUserColumns)

	return execute(db, "latest", "comments", func() ([]models.Comment, error) {
		rows, err := db.conn.QueryContext(ctx, q, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to query latest comments: %w", err)
		}
		defer closeWithLog(rows, "comment rows")

		comments := make([]models.Comment, 0, limit)
		for rows.Next() {
			var (
				restID    sql.NullInt64
				restName  sql.NullString
				restDesc  sql.NullString
				restImage sql.NullString
			)
			cm, err := scanCommentWithUser(rows, &restID, &restName, &restDesc, &restImage)
			if err != nil {
				return nil, fmt.Errorf("failed to scan comment: %w", err)
			}
			if restID.Valid {
				cm.Restaurant = &models.Restaurant{
					ID:          restID.Int64,
					Name:        restName.String,
					Description: restDesc.String,
					Image:       restImage.String,
				}
			}
			comments = append(comments, cm)
		}
		return comments, rows.Err()
	})
}
