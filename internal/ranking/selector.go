// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package ranking

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/forkful/internal/logging"
	"github.com/tomtom215/forkful/internal/metrics"
	"github.com/tomtom215/forkful/internal/models"
)

// ErrInvalidLimit is returned when fewer than one restaurant is requested.
var ErrInvalidLimit = errors.New("ranking limit must be at least 1")

// Source provides the two queries the selector is built from.
// It is implemented by *database.DB.
type Source interface {
	// TopFavorited returns up to limit restaurants with at least one
	// favorite, by favorite count descending then ID ascending.
	TopFavorited(ctx context.Context, limit int) ([]models.RestaurantSummary, error)

	// RandomRestaurants returns up to limit restaurants in random order,
	// none of which is in exclude.
	RandomRestaurants(ctx context.Context, limit int, exclude []int64) ([]models.RestaurantSummary, error)
}

// Selector builds the top restaurants list. It holds no mutable state and is
// safe for concurrent use.
type Selector struct {
	src    Source
	logger zerolog.Logger
}

// NewSelector creates a Selector reading from src.
func NewSelector(src Source) *Selector {
	return &Selector{
		src:    src,
		logger: logging.WithComponent("ranking"),
	}
}

// SelectTop returns up to n restaurants: the most favorited first, then random
// filler so the list reaches n when the store has enough restaurants.
func (s *Selector) SelectTop(ctx context.Context, n int, viewer models.Viewer) ([]models.RestaurantSummary, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, n)
	}

	ranked, err := s.src.TopFavorited(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("select top favorited: %w", err)
	}

	result := make([]models.RestaurantSummary, 0, n)
	result = appendForViewer(result, ranked, viewer)

	filled := 0
	if missing := n - len(ranked); missing > 0 {
		exclude := make([]int64, len(ranked))
		for i, r := range ranked {
			exclude[i] = r.ID
		}

		filler, err := s.src.RandomRestaurants(ctx, missing, exclude)
		if err != nil {
			return nil, fmt.Errorf("select random filler: %w", err)
		}
		if len(filler) > missing {
			filler = filler[:missing]
		}
		filled = len(filler)
		result = appendForViewer(result, filler, viewer)
	}

	metrics.RecordRankingSelection(filled)
	s.logger.Debug().
		Int("requested", n).
		Int("ranked", len(ranked)).
		Int("filled", filled).
		Bool("anonymous", viewer.IsAnonymous()).
		Msg("selected top restaurants")

	return result, nil
}

// appendForViewer copies items onto dst with the viewer's favorite state and
// the preview-length description.
func appendForViewer(dst, items []models.RestaurantSummary, viewer models.Viewer) []models.RestaurantSummary {
	for _, item := range items {
		item.Description = models.TruncateDescription(item.Description)
		item.IsFavorited = viewer.HasFavorited(item.ID)
		dst = append(dst, item)
	}
	return dst
}
