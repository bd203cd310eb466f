// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package api

import (
	"context"
	"time"

	"github.com/tomtom215/forkful/internal/auth"
	"github.com/tomtom215/forkful/internal/cache"
	"github.com/tomtom215/forkful/internal/config"
	"github.com/tomtom215/forkful/internal/database"
	"github.com/tomtom215/forkful/internal/database/query"
	"github.com/tomtom215/forkful/internal/models"
	"github.com/tomtom215/forkful/internal/ranking"
)

// Store is the persistence surface the handlers need. *database.DB satisfies it.
type Store interface {
	ranking.Source

	ListRestaurants(ctx context.Context, filter query.RestaurantFilter) ([]models.Restaurant, error)
	CountRestaurants(ctx context.Context, filter query.RestaurantFilter) (int64, error)
	GetRestaurantDetail(ctx context.Context, id int64) (models.RestaurantDetail, error)
	IncrementViewCount(ctx context.Context, id int64) (int64, error)
	GetDashboard(ctx context.Context, id int64) (models.Dashboard, error)
	LatestRestaurants(ctx context.Context, limit int) ([]models.Restaurant, error)
	LatestComments(ctx context.Context, limit int) ([]models.Comment, error)
	LoadViewer(ctx context.Context, userID int64) (models.Viewer, error)
	GetCredentialsByEmail(ctx context.Context, email string) (database.Credentials, error)
	Ping(ctx context.Context) error
}

// Feed sizes for GET /restaurants/feeds.
const (
	feedRestaurantLimit = 10
	feedCommentLimit    = 10
)

// Handler serves the restaurant API.
//
// All handlers write the JSON envelope in response.go and expect the
// middleware chain from NewRouter: request IDs, optional authentication and
// rate limiting are applied there, not here.
type Handler struct {
	store      Store
	selector   *ranking.Selector
	categories *cache.CategoryCache
	config     *config.Config
	jwtManager *auth.JWTManager
	startTime  time.Time
}

// NewHandler creates a handler. categories may be shared with the background
// refresher so both see the same warm cache.
func NewHandler(store Store, categories *cache.CategoryCache, cfg *config.Config, jwtManager *auth.JWTManager) *Handler {
	return &Handler{
		store:      store,
		selector:   ranking.NewSelector(store),
		categories: categories,
		config:     cfg,
		jwtManager: jwtManager,
		startTime:  time.Now(),
	}
}
