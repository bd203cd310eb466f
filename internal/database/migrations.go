// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/forkful/internal/logging"
)

// Migration is one versioned schema change.
type Migration struct {
	Version     int       // Unique version number (monotonically increasing)
	Name        string    // Human-readable migration name
	Description string    // What this migration does
	SQL         string    // SQL statements to execute
	AppliedAt   time.Time // Populated when read back from schema_migrations
}

const schemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// getMigrations returns all migrations in version order.
// Foreign keys are not declared: DuckDB rewrites updated rows, which trips
// FK checks on referenced tables. Dependent rows are deleted explicitly instead.
func getMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Name:        "core_tables",
			Description: "Categories, users and restaurants",
			SQL: `
CREATE SEQUENCE IF NOT EXISTS categories_id_seq START 1;
CREATE TABLE IF NOT EXISTS categories (
	id BIGINT PRIMARY KEY DEFAULT nextval('categories_id_seq'),
	name TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE SEQUENCE IF NOT EXISTS users_id_seq START 1;
CREATE TABLE IF NOT EXISTS users (
	id BIGINT PRIMARY KEY DEFAULT nextval('users_id_seq'),
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	is_admin BOOLEAN NOT NULL DEFAULT false,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE SEQUENCE IF NOT EXISTS restaurants_id_seq START 1;
CREATE TABLE IF NOT EXISTS restaurants (
	id BIGINT PRIMARY KEY DEFAULT nextval('restaurants_id_seq'),
	name TEXT NOT NULL,
	tel TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	opening_hours TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	image TEXT NOT NULL DEFAULT '',
	view_counts BIGINT NOT NULL DEFAULT 0,
	category_id BIGINT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);`,
		},
		{
			Version:     2,
			Name:        "social_tables",
			Description: "Comments, favorites and likes",
			SQL: `
CREATE SEQUENCE IF NOT EXISTS comments_id_seq START 1;
CREATE TABLE IF NOT EXISTS comments (
	id BIGINT PRIMARY KEY DEFAULT nextval('comments_id_seq'),
	text TEXT NOT NULL,
	user_id BIGINT NOT NULL,
	restaurant_id BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE SEQUENCE IF NOT EXISTS favorites_id_seq START 1;
CREATE TABLE IF NOT EXISTS favorites (
	id BIGINT PRIMARY KEY DEFAULT nextval('favorites_id_seq'),
	user_id BIGINT NOT NULL,
	restaurant_id BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (user_id, restaurant_id)
);

CREATE SEQUENCE IF NOT EXISTS likes_id_seq START 1;
CREATE TABLE IF NOT EXISTS likes (
	id BIGINT PRIMARY KEY DEFAULT nextval('likes_id_seq'),
	user_id BIGINT NOT NULL,
	restaurant_id BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (user_id, restaurant_id)
);`,
		},
		{
			Version:     3,
			Name:        "lookup_indexes",
			Description: "Indexes for category filter, feeds and favorite counts",
			SQL: `
CREATE INDEX IF NOT EXISTS idx_restaurants_category ON restaurants(category_id);
CREATE INDEX IF NOT EXISTS idx_restaurants_created_at ON restaurants(created_at);
CREATE INDEX IF NOT EXISTS idx_comments_restaurant ON comments(restaurant_id);
CREATE INDEX IF NOT EXISTS idx_comments_created_at ON comments(created_at);
CREATE INDEX IF NOT EXISTS idx_favorites_restaurant ON favorites(restaurant_id);
CREATE INDEX IF NOT EXISTS idx_likes_restaurant ON likes(restaurant_id);`,
		},
	}
}

// splitStatements splits a migration script on ";". Migration SQL never
// contains semicolons inside string literals.
func splitStatements(script string) []string {
	parts := strings.Split(script, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			stmts = append(stmts, p)
		}
	}
	return stmts
}

func (db *DB) getAppliedMigrations(ctx context.Context) (map[int]Migration, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT version, name, description, applied_at FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer closeWithLog(rows, "migration rows")

	applied := make(map[int]Migration)
	for rows.Next() {
		var m Migration
		if err := rows.Scan(&m.Version, &m.Name, &m.Description, &m.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[m.Version] = m
	}
	return applied, rows.Err()
}

func (db *DB) runVersionedMigrations() error {
	ctx, cancel := schemaContext()
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, schemaMigrationsTable); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := db.getAppliedMigrations(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	newMigrations := 0
	for _, m := range getMigrations() {
		if _, exists := applied[m.Version]; exists {
			continue
		}

		for _, stmt := range splitStatements(m.SQL) {
			if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to execute migration v%d (%s): %w", m.Version, m.Name, err)
			}
		}

		_, err := db.conn.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, name, description) VALUES (?, ?, ?)`,
			m.Version, m.Name, m.Description)
		if err != nil {
			return fmt.Errorf("failed to record migration v%d: %w", m.Version, err)
		}

		newMigrations++
	}

	if newMigrations > 0 {
		logging.Info().Int("count", newMigrations).Msg("Applied database migrations")
	}
	return nil
}

// GetCurrentSchemaVersion returns the highest applied migration version.
func (db *DB) GetCurrentSchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := db.conn.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}
