// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/forkful/internal/logging"
)

var (
	// ErrRestaurantNotFound is returned when a restaurant ID does not exist.
	ErrRestaurantNotFound = errors.New("restaurant didn't exist")

	// ErrUserNotFound is returned when a user lookup matches no row.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoCategories is returned by the seeder when there is no category to assign.
	ErrNoCategories = errors.New("no categories to assign restaurants to")

	// ErrUnavailable wraps circuit breaker rejections.
	ErrUnavailable = errors.New("database temporarily unavailable")
)

// closeWithLog closes a resource and logs any error.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource on an error path where Close errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
