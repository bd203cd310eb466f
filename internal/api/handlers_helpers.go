// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/forkful/internal/auth"
	"github.com/tomtom215/forkful/internal/database"
	"github.com/tomtom215/forkful/internal/logging"
	"github.com/tomtom215/forkful/internal/models"
	"github.com/tomtom215/forkful/internal/validation"
)

// maxRequestBodyBytes caps JSON request bodies.
const maxRequestBodyBytes = 1 << 20

// getIntParam parses an integer query parameter. Missing or malformed values
// fall back to defaultValue.
func getIntParam(r *http.Request, name string, defaultValue int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

// restaurantID parses the {id} path parameter.
func restaurantID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidRestaurantID
	}
	return id, nil
}

// validateRequest validates a request struct and writes a 400 on failure.
// It returns true when the request is valid.
func validateRequest(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	err := validation.Validate(req)
	if err == nil {
		return true
	}

	rw := NewResponseWriter(w, r)
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		rw.ValidationError(verrs.Message(), verrs.Details())
	} else {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Request validation did not run")
		rw.InternalError("Request could not be validated")
	}
	return false
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// viewer loads the authenticated user's favorites and likes. Anonymous
// requests, and tokens naming a user that no longer exists, get an empty viewer.
func (h *Handler) viewer(r *http.Request) (models.Viewer, error) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == 0 {
		return models.Viewer{}, nil
	}

	v, err := h.store.LoadViewer(r.Context(), userID)
	if errors.Is(err, database.ErrUserNotFound) {
		logging.Ctx(r.Context()).Debug().Int64("user_id", userID).Msg("Token user no longer exists, serving anonymously")
		return models.Viewer{}, nil
	}
	return v, err
}
