// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/forkful/internal/database"
	"github.com/tomtom215/forkful/internal/logging"
	"github.com/tomtom215/forkful/internal/ranking"
)

// ErrInvalidRestaurantID is returned for a non-numeric or non-positive {id}.
var ErrInvalidRestaurantID = errors.New("restaurant id must be a positive integer")

// respondStoreError maps an error from the store or the ranking selector to
// an HTTP response:
//
//	ErrRestaurantNotFound  -> 404 NOT_FOUND
//	ErrInvalidLimit        -> 400 VALIDATION_ERROR
//	ErrUnavailable         -> 503 SERVICE_UNAVAILABLE
//	anything else          -> 500 DATABASE_ERROR
//
// A request whose client has gone away gets no body.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	rw := NewResponseWriter(w, r)

	switch {
	case errors.Is(err, database.ErrRestaurantNotFound):
		rw.NotFound(database.ErrRestaurantNotFound.Error())
	case errors.Is(err, ranking.ErrInvalidLimit):
		rw.ValidationError(err.Error(), nil)
	case errors.Is(err, database.ErrUnavailable):
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Store unavailable")
		rw.ServiceUnavailable("Service temporarily unavailable, retry later")
	case errors.Is(err, context.Canceled) && r.Context().Err() != nil:
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Client canceled request")
	default:
		rw.DatabaseError(err)
	}
}
