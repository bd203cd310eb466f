// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package api

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/forkful/internal/database/query"
	"github.com/tomtom215/forkful/internal/logging"
	"github.com/tomtom215/forkful/internal/models"
	"github.com/tomtom215/forkful/internal/pagination"
)

// ListRestaurants handles GET /api/v1/restaurants.
//
// Query parameters:
//   - categoryId: filter by category; missing, malformed or 0 means all
//   - page: 1-based page, default 1; pages past the end return no rows
//   - limit: page size, default api.default_page_size (also used for 0 or
//     negative values), capped at api.max_page_size
func (h *Handler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	req := ListRestaurantsRequest{
		CategoryID: int64(getIntParam(r, "categoryId", 0)),
		Page:       getIntParam(r, "page", 1),
		Limit:      getIntParam(r, "limit", h.config.API.DefaultPageSize),
	}
	if req.CategoryID < 0 {
		req.CategoryID = 0
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = h.config.API.DefaultPageSize
	}
	if !validateRequest(w, r, &req) {
		return
	}
	if maxLimit := h.config.API.MaxPageSize; maxLimit > 0 && req.Limit > maxLimit {
		req.Limit = maxLimit
	}

	viewer, err := h.viewer(r)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	filter := query.RestaurantFilter{
		Limit:  req.Limit,
		Offset: pagination.GetOffset(req.Limit, req.Page),
	}.WithCategory(req.CategoryID)

	var (
		restaurants []models.Restaurant
		total       int64
		categories  []models.Category
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		restaurants, err = h.store.ListRestaurants(ctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = h.store.CountRestaurants(ctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = h.categories.Get(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		respondStoreError(w, r, err)
		return
	}

	items := make([]models.RestaurantListItem, 0, len(restaurants))
	for i := range restaurants {
		item := models.RestaurantListItem{
			Restaurant:  restaurants[i],
			IsFavorited: viewer.HasFavorited(restaurants[i].ID),
			IsLiked:     viewer.HasLiked(restaurants[i].ID),
		}
		item.Description = models.TruncateDescription(item.Description)
		items = append(items, item)
	}

	WriteSuccess(w, r, RestaurantListResponse{
		Restaurants: items,
		Categories:  categories,
		CategoryID:  req.CategoryID,
		Pagination:  pagination.GetPagination(req.Limit, req.Page, total),
	})
}

// GetRestaurant handles GET /api/v1/restaurants/{id}. Every successful read
// counts as one view.
func (h *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := restaurantID(r)
	if err != nil {
		NewResponseWriter(w, r).BadRequest(err.Error())
		return
	}

	viewer, err := h.viewer(r)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	if _, err := h.store.IncrementViewCount(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}

	detail, err := h.store.GetRestaurantDetail(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	WriteSuccess(w, r, RestaurantDetailResponse{
		Restaurant:  detail,
		IsFavorited: viewer.HasFavorited(id),
		IsLiked:     viewer.HasLiked(id),
	})
}

// GetDashboard handles GET /api/v1/restaurants/{id}/dashboard.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	id, err := restaurantID(r)
	if err != nil {
		NewResponseWriter(w, r).BadRequest(err.Error())
		return
	}

	dashboard, err := h.store.GetDashboard(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	WriteSuccess(w, r, DashboardResponse{Restaurant: dashboard})
}

// GetFeeds handles GET /api/v1/restaurants/feeds: the newest restaurants and
// the newest comments, loaded concurrently.
func (h *Handler) GetFeeds(w http.ResponseWriter, r *http.Request) {
	var feeds models.Feeds

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		feeds.Restaurants, err = h.store.LatestRestaurants(ctx, feedRestaurantLimit)
		return err
	})
	g.Go(func() error {
		var err error
		feeds.Comments, err = h.store.LatestComments(ctx, feedCommentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		respondStoreError(w, r, err)
		return
	}

	WriteSuccess(w, r, feeds)
}

// GetTopRestaurants handles GET /api/v1/restaurants/top.
func (h *Handler) GetTopRestaurants(w http.ResponseWriter, r *http.Request) {
	req := TopRestaurantsRequest{
		Limit: getIntParam(r, "limit", h.config.Ranking.TopLimit),
	}
	if !validateRequest(w, r, &req) {
		return
	}
	if maxLimit := h.config.Ranking.MaxLimit; maxLimit > 0 && req.Limit > maxLimit {
		req.Limit = maxLimit
	}

	viewer, err := h.viewer(r)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	top, err := h.selector.SelectTop(r.Context(), req.Limit, viewer)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().Int("limit", req.Limit).Int("returned", len(top)).Msg("Served top restaurants")
	WriteSuccess(w, r, TopRestaurantsResponse{Restaurants: top})
}
