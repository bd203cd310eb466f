// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/forkful/internal/auth"
	"github.com/tomtom215/forkful/internal/database"
	"github.com/tomtom215/forkful/internal/logging"
)

// Login handles POST /api/v1/auth/login and issues a bearer token.
// Unknown emails and wrong passwords get the same 401.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if !validateRequest(w, r, &req) {
		return
	}

	creds, err := h.store.GetCredentialsByEmail(r.Context(), req.Email)
	if errors.Is(err, database.ErrUserNotFound) {
		logging.Ctx(r.Context()).Info().Msg("Login failed: unknown email")
		rw.Unauthorized(auth.ErrInvalidCredentials.Error())
		return
	}
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	if err := auth.CheckPassword(creds.PasswordHash, req.Password); err != nil {
		logging.Ctx(r.Context()).Info().Int64("user_id", creds.User.ID).Msg("Login failed: wrong password")
		rw.Unauthorized(auth.ErrInvalidCredentials.Error())
		return
	}

	token, err := h.jwtManager.GenerateToken(creds.User.ID, creds.User.Name)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to issue token")
		rw.InternalError("Failed to issue token")
		return
	}

	logging.Ctx(r.Context()).Info().Int64("user_id", creds.User.ID).Msg("User logged in")
	rw.Success(LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(h.jwtManager.Timeout()).UTC(),
		User:      creds.User,
	})
}
