// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package api

import (
	"time"

	"github.com/tomtom215/forkful/internal/models"
	"github.com/tomtom215/forkful/internal/pagination"
)

// ListRestaurantsRequest holds the query parameters of GET /restaurants.
type ListRestaurantsRequest struct {
	CategoryID int64 `query:"categoryId" validate:"min=0"`
	Page       int   `query:"page" validate:"min=1"`
	Limit      int   `query:"limit" validate:"min=1"`
}

// TopRestaurantsRequest holds the query parameters of GET /restaurants/top.
type TopRestaurantsRequest struct {
	Limit int `query:"limit" validate:"min=1"`
}

// LoginRequest is the body of POST /auth/login.
// bcrypt ignores input past 72 bytes.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// RestaurantListResponse is the data of GET /restaurants.
type RestaurantListResponse struct {
	Restaurants []models.RestaurantListItem `json:"restaurants"`
	Categories  []models.Category           `json:"categories"`
	CategoryID  int64                       `json:"categoryId"`
	Pagination  pagination.Pagination       `json:"pagination"`
}

// RestaurantDetailResponse is the data of GET /restaurants/{id}.
type RestaurantDetailResponse struct {
	Restaurant  models.RestaurantDetail `json:"restaurant"`
	IsFavorited bool                    `json:"isFavorited"`
	IsLiked     bool                    `json:"isLiked"`
}

// DashboardResponse is the data of GET /restaurants/{id}/dashboard.
type DashboardResponse struct {
	Restaurant models.Dashboard `json:"restaurant"`
}

// TopRestaurantsResponse is the data of GET /restaurants/top.
type TopRestaurantsResponse struct {
	Restaurants []models.RestaurantSummary `json:"restaurants"`
}

// LoginResponse is the data of a successful login.
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      models.User `json:"user"`
}

// HealthResponse is the data of GET /health.
type HealthResponse struct {
	Status   string  `json:"status"`
	Database string  `json:"database"`
	Uptime   float64 `json:"uptime"`
}
