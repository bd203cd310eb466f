// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

// Package pagination computes page windows and page navigation for the
// restaurant index.
package pagination

import "math"

// MaxOffset caps GetOffset. Pages past it come back empty rather than
// overflowing into a negative offset.
const MaxOffset = math.MaxInt32

// Pagination describes the page navigation for a listing.
type Pagination struct {
	Pages       []int `json:"pages"`
	TotalPage   int   `json:"totalPage"`
	CurrentPage int   `json:"currentPage"`
	Prev        int   `json:"prev"`
	Next        int   `json:"next"`
}

// GetOffset returns the number of rows to skip for page. Pages start at 1;
// anything lower is treated as the first page. The result is never negative
// and never exceeds MaxOffset.
func GetOffset(limit, page int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if page-1 > MaxOffset/limit {
		return MaxOffset
	}
	return (page - 1) * limit
}

// GetPagination builds the navigation for total rows shown limit per page.
// CurrentPage is clamped into [1, TotalPage], and to 1 when there are no pages.
func GetPagination(limit, page int, total int64) Pagination {
	totalPage := 0
	if limit > 0 && total > 0 {
		totalPage = int((total + int64(limit) - 1) / int64(limit))
	}

	pages := make([]int, totalPage)
	for i := range pages {
		pages[i] = i + 1
	}

	current := page
	if current > totalPage {
		current = totalPage
	}
	if current < 1 {
		current = 1
	}

	next := current + 1
	if next > totalPage {
		next = max(totalPage, 1)
	}

	return Pagination{
		Pages:       pages,
		TotalPage:   totalPage,
		CurrentPage: current,
		Prev:        max(current-1, 1),
		Next:        next,
	}
}
