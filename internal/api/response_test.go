// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/forkful/internal/database"
	"github.com/tomtom215/forkful/internal/logging"
	"github.com/tomtom215/forkful/internal/ranking"
)

func TestResponseWriter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(rw *ResponseWriter)
		wantStatus int
		wantCode   string
	}{
		{"bad request", func(rw *ResponseWriter) { rw.BadRequest("x") }, http.StatusBadRequest, ErrCodeBadRequest},
		{"unauthorized", func(rw *ResponseWriter) { rw.Unauthorized("x") }, http.StatusUnauthorized, ErrCodeUnauthorized},
		{"not found", func(rw *ResponseWriter) { rw.NotFound("x") }, http.StatusNotFound, ErrCodeNotFound},
		{"too many requests", func(rw *ResponseWriter) { rw.TooManyRequests("x") }, http.StatusTooManyRequests, ErrCodeTooManyRequests},
		{"internal", func(rw *ResponseWriter) { rw.InternalError("x") }, http.StatusInternalServerError, ErrCodeInternalError},
		{"unavailable", func(rw *ResponseWriter) { rw.ServiceUnavailable("x") }, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"validation", func(rw *ResponseWriter) { rw.ValidationError("x", nil) }, http.StatusBadRequest, ErrCodeValidationError},
		{"database", func(rw *ResponseWriter) { rw.DatabaseError(errors.New("secret detail")) }, http.StatusInternalServerError, ErrCodeDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(logging.ContextWithRequestID(req.Context(), "req-1"))
			w := httptest.NewRecorder()

			tt.write(NewResponseWriter(w, req))

			assertErrorCode(t, w, tt.wantStatus, tt.wantCode)
			env := decode[json.RawMessage](t, w)
			if env.Meta == nil || env.Meta.RequestID != "req-1" {
				t.Errorf("expected meta.requestId req-1, got %+v", env.Meta)
			}
			if env.Error.Message == "secret detail" {
				t.Error("database error leaked to client")
			}
		})
	}
}

func TestResponseWriter_Success(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	WriteSuccess(w, req, map[string]int{"answer": 42})

	assertStatusCode(t, w, http.StatusOK)
	env := decode[map[string]int](t, w)
	if !env.Success || env.Data["answer"] != 42 || env.Error != nil {
		t.Errorf("unexpected envelope %+v", env)
	}
	if env.Meta == nil || env.Meta.Timestamp.IsZero() {
		t.Error("expected meta timestamp")
	}
}

func TestRespondStoreError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", fmt.Errorf("get: %w", database.ErrRestaurantNotFound), http.StatusNotFound, ErrCodeNotFound},
		{"invalid limit", fmt.Errorf("%w: got 0", ranking.ErrInvalidLimit), http.StatusBadRequest, ErrCodeValidationError},
		{"unavailable", database.ErrUnavailable, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError, ErrCodeDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			w := httptest.NewRecorder()
			respondStoreError(w, req, tt.err)
			assertErrorCode(t, w, tt.wantStatus, tt.wantCode)
		})
	}
}
