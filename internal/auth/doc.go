// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

/*
Package auth provides login tokens and the optional-auth middleware.

Key Components:

  - JWTManager: HS256 token generation and validation. The subject claim
    carries the user ID.
  - CheckPassword: bcrypt comparison for the login endpoint.
  - Middleware.OptionalAuth: reads "Authorization: Bearer <token>" and, when
    the token is valid, stores the user ID in the request context. Missing,
    malformed and expired tokens leave the request anonymous; read routes
    never fail because of a bad token.

Usage Example:

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
	}
	mw := auth.NewMiddleware(jwtManager)
	router.Use(mw.OptionalAuth)

	// In a handler
	userID := auth.UserIDFromContext(r.Context()) // 0 when anonymous

Handlers turn the user ID into a models.Viewer by loading the user's
favorites and likes, and pass that viewer explicitly to the operations that
need it.
*/
package auth
