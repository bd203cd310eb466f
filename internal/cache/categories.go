// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package cache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/forkful/internal/logging"
	"github.com/tomtom215/forkful/internal/metrics"
	"github.com/tomtom215/forkful/internal/models"
)

const (
	categoriesCacheName = "categories"
	allCategoriesKey    = "all"

	// loadTimeout bounds a shared load, which outlives any single caller.
	loadTimeout = 10 * time.Second
)

// CategoryLoader reads the category list from the store.
// It is implemented by *database.DB.
type CategoryLoader interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// CategoryCache serves the category list shown next to the restaurant index.
// Concurrent misses share a single load.
type CategoryCache struct {
	loader CategoryLoader
	cache  *TTL[[]models.Category]
	group  singleflight.Group
}

// NewCategoryCache creates a category cache whose entries live for ttl.
func NewCategoryCache(loader CategoryLoader, ttl time.Duration) *CategoryCache {
	return &CategoryCache{
		loader: loader,
		cache:  NewTTL[[]models.Category](categoriesCacheName, ttl),
	}
}

// Get returns the cached categories, loading them on a miss. The load is
// shared with concurrent callers and detached from ctx's cancellation, so a
// caller that gives up returns ctx.Err() without failing the others.
func (c *CategoryCache) Get(ctx context.Context) ([]models.Category, error) {
	if cats, ok := c.cache.Get(allCategoriesKey); ok {
		return cats, nil
	}

	ch := c.group.DoChan(allCategoriesKey, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		cats, err := c.loader.ListCategories(loadCtx)
		if err != nil {
			return nil, err
		}
		c.cache.Set(allCategoriesKey, cats)
		return cats, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("load categories: %w", res.Err)
		}
		return res.Val.([]models.Category), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Refresh reloads the categories unconditionally. On failure the previous
// entry is kept until it expires.
func (c *CategoryCache) Refresh(ctx context.Context) error {
	cats, err := c.loader.ListCategories(ctx)
	if err != nil {
		metrics.CacheRefreshes.WithLabelValues(categoriesCacheName, "failure").Inc()
		return fmt.Errorf("refresh categories: %w", err)
	}

	c.cache.Set(allCategoriesKey, cats)
	evicted := c.cache.Cleanup()
	metrics.CacheRefreshes.WithLabelValues(categoriesCacheName, "success").Inc()
	logging.Debug().Int("categories", len(cats)).Int("evicted", evicted).Msg("Category cache refreshed")
	return nil
}

// Invalidate drops the cached list so the next Get reloads it.
func (c *CategoryCache) Invalidate() {
	c.cache.Delete(allCategoriesKey)
}

// Stats returns the underlying cache counters.
func (c *CategoryCache) Stats() Stats {
	return c.cache.GetStats()
}
