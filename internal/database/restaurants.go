// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tomtom215/forkful/internal/database/query"
	"github.com/tomtom215/forkful/internal/models"
)

// ListRestaurants returns one page of restaurants with their categories,
// ordered by ID. Descriptions are returned in full.
func (db *DB) ListRestaurants(ctx context.Context, filter query.RestaurantFilter) ([]models.Restaurant, error) {
	whereClause, args := filter.Where().BuildWithPrefix()
	q := fmt.Sprintf(`
		SELECT %s
		FROM restaurants r
		LEFT JOIN categories c ON c.id = r.category_id
		%s
		ORDER BY r.id
		LIMIT ? OFFSET ?`, restaurantWithCategoryColumns, whereClause)
	args = append(args, filter.Limit, filter.Offset)

	return execute(db, "list", "restaurants", func() ([]models.Restaurant, error) {
		rows, err := db.conn.QueryContext(ctx, q, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to query restaurants: %w", err)
		}
		defer closeWithLog(rows, "restaurant rows")

		restaurants := make([]models.Restaurant, 0, filter.Limit)
		for rows.Next() {
			r, err := scanRestaurantWithCategory(rows)
			if err != nil {
				return nil, fmt.Errorf("failed to scan restaurant: %w", err)
			}
			restaurants = append(restaurants, r)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to iterate restaurants: %w", err)
		}
		return restaurants, nil
	})
}

// CountRestaurants returns the number of restaurants matching the filter,
// ignoring its page window.
func (db *DB) CountRestaurants(ctx context.Context, filter query.RestaurantFilter) (int64, error) {
	whereClause, args := filter.Where().BuildWithPrefix()
	q := fmt.Sprintf(`SELECT COUNT(*) FROM restaurants r %s`, whereClause)

	return execute(db, "count", "restaurants", func() (int64, error) {
		var total int64
		if err := db.conn.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
			return 0, fmt.Errorf("failed to count restaurants: %w", err)
		}
		return total, nil
	})
}

// GetRestaurant returns one restaurant with its category.
func (db *DB) GetRestaurant(ctx context.Context, id int64) (models.Restaurant, error) {
	return execute(db, "get", "restaurants", func() (models.Restaurant, error) {
		return db.getRestaurant(ctx, id)
	})
}

func (db *DB) getRestaurant(ctx context.Context, id int64) (models.Restaurant, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM restaurants r
		LEFT JOIN categories c ON c.id = r.category_id
		WHERE r.id = ?`, restaurantWithCategoryColumns)

	r, err := scanRestaurantWithCategory(db.conn.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Restaurant{}, fmt.Errorf("restaurant %d: %w", id, ErrRestaurantNotFound)
	}
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to get restaurant %d: %w", id, err)
	}
	return r, nil
}

// IncrementViewCount atomically adds one to a restaurant's view counter and
// returns the new value.
func (db *DB) IncrementViewCount(ctx context.Context, id int64) (int64, error) {
	return execute(db, "increment_views", "restaurants", func() (int64, error) {
		var views int64
		err := db.conn.QueryRowContext(ctx, `
			UPDATE restaurants
			SET view_counts = view_counts + 1
			WHERE id = ?
			RETURNING view_counts`, id).Scan(&views)
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("restaurant %d: %w", id, ErrRestaurantNotFound)
		}
		if err != nil {
			return 0, fmt.Errorf("failed to increment view count for restaurant %d: %w", id, err)
		}
		return views, nil
	})
}

// GetRestaurantDetail returns a restaurant with its category, its comments
// (newest first, each with its author) and the users who favorited and liked it.
func (db *DB) GetRestaurantDetail(ctx context.Context, id int64) (models.RestaurantDetail, error) {
	return execute(db, "get_detail", "restaurants", func() (models.RestaurantDetail, error) {
		r, err := db.getRestaurant(ctx, id)
		if err != nil {
			return models.RestaurantDetail{}, err
		}

		comments, err := db.restaurantComments(ctx, id)
		if err != nil {
			return models.RestaurantDetail{}, err
		}

		favoritedUsers, err := db.restaurantUsers(ctx, "favorites", id)
		if err != nil {
			return models.RestaurantDetail{}, err
		}

		likedUsers, err := db.restaurantUsers(ctx, "likes", id)
		if err != nil {
			return models.RestaurantDetail{}, err
		}

		return models.RestaurantDetail{
			Restaurant:     r,
			Comments:       comments,
			FavoritedUsers: favoritedUsers,
			LikedUsers:     likedUsers,
		}, nil
	})
}

// GetDashboard returns a restaurant with its category and comments.
func (db *DB) GetDashboard(ctx context.Context, id int64) (models.Dashboard, error) {
	return execute(db, "get_dashboard", "restaurants", func() (models.Dashboard, error) {
		r, err := db.getRestaurant(ctx, id)
		if err != nil {
			return models.Dashboard{}, err
		}

		comments, err := db.restaurantComments(ctx, id)
		if err != nil {
			return models.Dashboard{}, err
		}

		return models.Dashboard{
			Restaurant:   r,
			Comments:     comments,
			CommentCount: len(comments),
		}, nil
	})
}

func (db *DB) restaurantComments(ctx context.Context, restaurantID int64) ([]models.Comment, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.restaurant_id = ?
		ORDER BY c.created_at DESC, c.id DESC`, commentWithUserColumns)

	rows, err := db.conn.QueryContext(ctx, q, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments for restaurant %d: %w", restaurantID, err)
	}
	defer closeWithLog(rows, "comment rows")

	comments := []models.Comment{}
	for rows.Next() {
		cm, err := scanCommentWithUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, cm)
	}
	return comments, rows.Err()
}

// restaurantUsers lists users linked to a restaurant through a join table
// (favorites or likes). table is never user input.
func (db *DB) restaurantUsers(ctx context.Context, table string, restaurantID int64) ([]models.User, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM %s j
		JOIN users u ON u.id = j.user_id
		WHERE j.restaurant_id = ?
		ORDER BY j.created_at, u.id`, userColumns, table)

	rows, err := db.conn.QueryContext(ctx, q, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s for restaurant %d: %w", table, restaurantID, err)
	}
	defer closeWithLog(rows, table+" rows")

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateRestaurant inserts a restaurant and returns its ID.
func (db *DB) CreateRestaurant(ctx context.Context, r *models.Restaurant) (int64, error) {
	return execute(db, "insert", "restaurants", func() (int64, error) {
		var categoryID interface{}
		if r.CategoryID > 0 {
			categoryID = r.CategoryID
		}
		var id int64
		err := db.conn.QueryRowContext(ctx, `
			INSERT INTO restaurants (name, tel, address, opening_hours, description, image, category_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			RETURNING id`,
			r.Name, r.Tel, r.Address, r.OpeningHours, r.Description, r.Image, categoryID,
		).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("failed to insert restaurant %q: %w", r.Name, err)
		}
		return id, nil
	})
}
