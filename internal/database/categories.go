// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/forkful/internal/models"
)

// ListCategories returns all categories ordered by ID.
func (db *DB) ListCategories(ctx context.Context) ([]models.Category, error) {
	return execute(db, "list", "categories", func() ([]models.Category, error) {
		rows, err := db.conn.QueryContext(ctx, `
			SELECT id, name, created_at, updated_at
			FROM categories
			ORDER BY id`)
		if err != nil {
			return nil, fmt.Errorf("failed to query categories: %w", err)
		}
		defer closeWithLog(rows, "category rows")

		categories := []models.Category{}
		for rows.Next() {
			var c models.Category
			if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
				return nil, fmt.Errorf("failed to scan category: %w", err)
			}
			categories = append(categories, c)
		}
		return categories, rows.Err()
	})
}

// EnsureCategory inserts a category if no category has that name and
// returns the category's ID either way.
func (db *DB) EnsureCategory(ctx context.Context, name string) (int64, error) {
	return execute(db, "upsert", "categories", func() (int64, error) {
		if _, err := db.conn.ExecContext(ctx,
			`INSERT INTO categories (name) VALUES (?) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			return 0, fmt.Errorf("failed to insert category %q: %w", name, err)
		}

		var id int64
		if err := db.conn.QueryRowContext(ctx,
			`SELECT id FROM categories WHERE name = ?`, name).Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to look up category %q: %w", name, err)
		}
		return id, nil
	})
}
