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

	"github.com/tomtom215/forkful/internal/models"
)

// EnsureUser inserts a user unless one with the same email exists and returns
// the user's ID either way. passwordHash must already be a bcrypt hash.
func (db *DB) EnsureUser(ctx context.Context, name, email, passwordHash string, isAdmin bool) (int64, error) {
	return execute(db, "upsert", "users", func() (int64, error) {
		if _, err := db.conn.ExecContext(ctx, `
			INSERT INTO users (name, email, password_hash, is_admin)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (email) DO NOTHING`, name, email, passwordHash, isAdmin); err != nil {
			return 0, fmt.Errorf("failed to insert user %q: %w", email, err)
		}

		var id int64
		if err := db.conn.QueryRowContext(ctx, `SELECT id FROM users WHERE email = ?`, email).Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to look up user %q: %w", email, err)
		}
		return id, nil
	})
}

// Credentials is a user together with their password hash, for login checks only.
type Credentials struct {
	User         models.User
	PasswordHash string
}

// GetCredentialsByEmail returns the user and password hash for an email address.
func (db *DB) GetCredentialsByEmail(ctx context.Context, email string) (Credentials, error) {
	return execute(db, "get_credentials", "users", func() (Credentials, error) {
		var c Credentials
		err := db.conn.QueryRowContext(ctx, `
			SELECT u.id, u.name, u.email, u.is_admin, u.created_at, u.password_hash
			FROM users u
			WHERE u.email = ?`, email).Scan(
			&c.User.ID, &c.User.Name, &c.User.Email, &c.User.IsAdmin, &c.User.CreatedAt, &c.PasswordHash)
		if errors.Is(err, sql.ErrNoRows) {
			return Credentials{}, ErrUserNotFound
		}
		if err != nil {
			return Credentials{}, fmt.Errorf("failed to get credentials: %w", err)
		}
		return c, nil
	})
}

// LoadViewer builds the Viewer for a signed-in user from their favorites
// and likes. A userID of 0 returns the anonymous viewer without a query.
func (db *DB) LoadViewer(ctx context.Context, userID int64) (models.Viewer, error) {
	if userID == 0 {
		return models.Viewer{}, nil
	}

	return execute(db, "load_viewer", "users", func() (models.Viewer, error) {
		var exists bool
		if err := db.conn.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE id = ?)`, userID).Scan(&exists); err != nil {
			return models.Viewer{}, fmt.Errorf("failed to look up user %d: %w", userID, err)
		}
		if !exists {
			return models.Viewer{}, fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
		}

		favorites, err := db.userRestaurantIDs(ctx, "favorites", userID)
		if err != nil {
			return models.Viewer{}, err
		}
		likes, err := db.userRestaurantIDs(ctx, "likes", userID)
		if err != nil {
			return models.Viewer{}, err
		}
		return models.NewViewer(userID, favorites, likes), nil
	})
}

// userRestaurantIDs lists restaurant IDs from a join table (favorites or likes).
func (db *DB) userRestaurantIDs(ctx context.Context, table string, userID int64) ([]int64, error) {
	rows, err := db.conn.QueryContext(ctx,
		fmt.Sprintf(`SELECT restaurant_id FROM %s WHERE user_id = ? ORDER BY restaurant_id`, table), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s for user %d: %w", table, userID, err)
	}
	defer closeWithLog(rows, table+" rows")

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AddFavorite marks a restaurant as favorited by a user. Repeated calls are no-ops.
func (db *DB) AddFavorite(ctx context.Context, userID, restaurantID int64) error {
	return db.link(ctx, "favorites", userID, restaurantID)
}

// AddLike marks a restaurant as liked by a user. Repeated calls are no-ops.
func (db *DB) AddLike(ctx context.Context, userID, restaurantID int64) error {
	return db.link(ctx, "likes", userID, restaurantID)
}

func (db *DB) link(ctx context.Context, table string, userID, restaurantID int64) error {
	return exec(db, "insert", table, func() error {
		_, err := db.conn.ExecContext(ctx,
			fmt.Sprintf(`INSERT INTO %s (user_id, restaurant_id) VALUES (?, ?) ON CONFLICT (user_id, restaurant_id) DO NOTHING`, table),
			userID, restaurantID)
		if err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		return nil
	})
}

// AddComment stores a comment and returns its ID.
func (db *DB) AddComment(ctx context.Context, userID, restaurantID int64, text string) (int64, error) {
	return execute(db, "insert", "comments", func() (int64, error) {
		var id int64
		err := db.conn.QueryRowContext(ctx, `
			INSERT INTO comments (text, user_id, restaurant_id)
			VALUES (?, ?, ?)
			RETURNING id`, text, userID, restaurantID).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("failed to insert comment: %w", err)
		}
		return id, nil
	})
}
