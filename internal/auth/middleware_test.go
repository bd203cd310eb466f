// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddleware_OptionalAuth(t *testing.T) {
	t.Parallel()
	manager := newTestManager(t)

	valid, err := manager.GenerateToken(5, "user1")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name       string
		header     string
		manager    *JWTManager
		wantUserID int64
	}{
		{"valid bearer token", "Bearer " + valid, manager, 5},
		{"lowercase scheme", "bearer " + valid, manager, 5},
		{"no header", "", manager, 0},
		{"basic scheme", "Basic dXNlcjpwYXNz", manager, 0},
		{"garbage token", "Bearer garbage", manager, 0},
		{"empty token", "Bearer ", manager, 0},
		{"no manager", "Bearer " + valid, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotUserID int64 = -1
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID = UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurants", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			NewMiddleware(tt.manager).OptionalAuth(next).ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if gotUserID != tt.wantUserID {
				t.Errorf("user ID = %d, want %d", gotUserID, tt.wantUserID)
			}
		})
	}
}
