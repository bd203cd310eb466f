// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

/*
Package api provides the HTTP JSON API for Forkful.

Routes:

	GET  /api/v1/health                      database ping and uptime
	GET  /api/v1/health/live                 liveness probe
	POST /api/v1/auth/login                  issue a bearer token
	GET  /api/v1/restaurants                 paginated list, optional categoryId
	GET  /api/v1/restaurants/feeds           newest restaurants and comments
	GET  /api/v1/restaurants/top             most favorited, random fill
	GET  /api/v1/restaurants/{id}            detail, counts one view
	GET  /api/v1/restaurants/{id}/dashboard  view and comment counts
	GET  /metrics                            Prometheus exposition

Restaurant routes accept an optional "Authorization: Bearer" token. With a
valid token, isFavorited and isLiked reflect that user; without one they are
false.

Every response uses the same envelope:

	{
	  "success": true,
	  "data": {...},
	  "meta": {"requestId": "...", "timestamp": "...", "durationMs": 3}
	}

Errors set success to false and carry {"code", "message", "details"} under
"error". Codes are listed in response.go.

Usage Example:

	db, _ := database.New(&cfg.Database)
	categories := cache.NewCategoryCache(db, cfg.Cache.CategoryTTL)
	jwtManager, _ := auth.NewJWTManager(&cfg.Security)

	handler := api.NewHandler(db, categories, cfg, jwtManager)
	router := api.NewRouter(handler, auth.NewMiddleware(jwtManager),
	    api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
*/
package api
