// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

// Package validation checks the restaurant API's request structs with
// go-playground/validator.
//
// Validate reports each broken rule as a FieldError named by the json or
// query tag the client sent, with wording specific to the restaurant API
// fields (page, limit, categoryId, email, password):
//
//	type ListRestaurantsRequest struct {
//	    CategoryID int64 `query:"categoryId" validate:"min=0"`
//	    Page       int   `query:"page" validate:"min=1"`
//	    Limit      int   `query:"limit" validate:"min=1"`
//	}
//
//	var verrs validation.Errors
//	if err := validation.Validate(&req); errors.As(err, &verrs) {
//	    rw.ValidationError(verrs.Message(), verrs.Details())
//	}
package validation
