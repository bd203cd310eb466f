// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

// Package ranking selects the "top restaurants" list.
//
// # Selection
//
// SelectTop returns exactly n restaurants whenever the store holds at least n:
//
//  1. Ranked segment: restaurants with at least one favorite, ordered by
//     favorite count descending (ties by ascending ID), limited to n.
//  2. Filler segment: when fewer than n were ranked, random restaurants not
//     already in the ranked segment make up the difference.
//
// The ranked segment always comes first. Descriptions are cut to
// models.DescriptionPreviewLength characters and IsFavorited reflects the
// viewer passed in by the caller. A signed-out visitor is the zero
// models.Viewer.
//
// # Usage
//
//	selector := ranking.NewSelector(db)
//	top, err := selector.SelectTop(ctx, 10, viewer)
//
// # Errors
//
// ErrInvalidLimit is returned for n < 1. Errors from the Source are wrapped
// and returned as-is; the selector never retries.
package ranking
