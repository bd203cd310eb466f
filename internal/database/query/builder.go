// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

// Package query provides SQL query building utilities for the database package.
package query

import (
	"fmt"
	"strings"
)

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
//
// Example usage:
//
//	wb := query.NewWhereBuilder()
//	wb.AddCategory(filter.CategoryID)
//	wb.AddExcludedIDs("r.id", rankedIDs)
//	whereClause, args := wb.Build()
//	// r.category_id = ? AND r.id NOT IN (?, ?)
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddCategory filters restaurants by category. A nil categoryID adds nothing.
func (wb *WhereBuilder) AddCategory(categoryID *int64) *WhereBuilder {
	if categoryID != nil {
		wb.clauses = append(wb.clauses, "r.category_id = ?")
		wb.args = append(wb.args, *categoryID)
	}
	return wb
}

// AddExcludedIDs adds "column NOT IN (...)". An empty ids slice adds nothing.
func (wb *WhereBuilder) AddExcludedIDs(column string, ids []int64) *WhereBuilder {
	if len(ids) == 0 {
		return wb
	}
	placeholders := make([]string, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		wb.args = append(wb.args, id)
	}
	wb.clauses = append(wb.clauses, fmt.Sprintf("%s NOT IN (%s)", column, strings.Join(placeholders, ", ")))
	return wb
}

// Build returns the combined clause and its arguments. An empty builder yields "1=1".
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// BuildWithPrefix returns Build's clause prefixed with "WHERE ".
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	whereClause, args := wb.Build()
	return "WHERE " + whereClause, args
}
