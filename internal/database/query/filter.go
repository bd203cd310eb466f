// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package query

// RestaurantFilter holds the optional filters and the page window for the restaurant index.
type RestaurantFilter struct {
	// CategoryID restricts results to one category when non-nil.
	CategoryID *int64

	Limit  int
	Offset int
}

// WithCategory returns a copy of f filtered to categoryID. Zero or negative
// IDs clear the filter, matching "all categories".
func (f RestaurantFilter) WithCategory(categoryID int64) RestaurantFilter {
	if categoryID <= 0 {
		f.CategoryID = nil
		return f
	}
	id := categoryID
	f.CategoryID = &id
	return f
}

// Where builds the WHERE clause for the filter against the "r" restaurants alias.
func (f RestaurantFilter) Where() *WhereBuilder {
	return NewWhereBuilder().AddCategory(f.CategoryID)
}
