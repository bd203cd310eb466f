// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/tomtom215/forkful/internal/logging"
)

type contextKey string

// UserIDContextKey holds the signed-in user's ID.
const UserIDContextKey contextKey = "user_id"

// Middleware attaches the signed-in user to requests.
type Middleware struct {
	jwtManager *JWTManager
}

// NewMiddleware creates the auth middleware. A nil manager treats every
// request as anonymous.
func NewMiddleware(jwtManager *JWTManager) *Middleware {
	return &Middleware{jwtManager: jwtManager}
}

// OptionalAuth stores the user ID from a valid bearer token in the request
// context. Requests without a usable token continue anonymously.
func (m *Middleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok || m.jwtManager == nil {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Ignoring invalid bearer token")
			next.ServeHTTP(w, r)
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Ignoring bearer token without user")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUserID(r.Context(), userID)))
	})
}

// bearerToken extracts the token from an "Authorization: Bearer" header value.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// ContextWithUserID returns a copy of ctx carrying userID.
func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDContextKey, userID)
}

// UserIDFromContext returns the signed-in user's ID, or 0 for anonymous requests.
func UserIDFromContext(ctx context.Context) int64 {
	if id, ok := ctx.Value(UserIDContextKey).(int64); ok {
		return id
	}
	return 0
}
