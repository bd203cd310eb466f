// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

/*
Package middleware provides the chi-compatible HTTP middleware shared by all
routes.

Key Components:

  - RequestID: accepts or generates an X-Request-ID and stores it in the
    logging context, so every log line for the request carries request_id.
  - PrometheusMetrics: records forkful_api_* metrics labelled by the chi
    route pattern (not the raw path, which would explode cardinality).
  - RequestLogger: one structured access log line per request; requests
    slower than the threshold are logged at warn level.
  - SecurityHeaders: conservative response headers for a JSON API.

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(time.Second))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.SecurityHeaders)
*/
package middleware
