// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/forkful/internal/auth"
	"github.com/tomtom215/forkful/internal/middleware"
)

// slowRequestThreshold is the duration above which requests log at warn level.
const slowRequestThreshold = time.Second

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	authMW        *auth.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. authMW may be nil, in which case every request
// is served anonymously.
func NewRouter(handler *Handler, authMW *auth.Middleware, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		authMW:        authMW,
		chiMiddleware: chiMW,
	}
}

// SetupChi builds the HTTP handler with all routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(slowRequestThreshold))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.SecurityHeaders)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(chimiddleware.Compress(5))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(router.chiMiddleware.LoginRateLimit())
		r.Post("/login", router.handler.Login)
	})

	r.Route("/api/v1/restaurants", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		if router.authMW != nil {
			r.Use(router.authMW.OptionalAuth)
		}

		r.Get("/", router.handler.ListRestaurants)
		r.Get("/feeds", router.handler.GetFeeds)
		r.Get("/top", router.handler.GetTopRestaurants)
		r.Get("/{id}", router.handler.GetRestaurant)
		r.Get("/{id}/dashboard", router.handler.GetDashboard)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
