// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package models

// Viewer is the requesting user's identity and favorite/like sets.
// The zero value is an anonymous viewer who has favorited and liked nothing.
type Viewer struct {
	UserID    int64
	Favorites map[int64]struct{}
	Likes     map[int64]struct{}
}

// NewViewer builds a Viewer from restaurant ID lists.
func NewViewer(userID int64, favoriteIDs, likedIDs []int64) Viewer {
	v := Viewer{
		UserID:    userID,
		Favorites: make(map[int64]struct{}, len(favoriteIDs)),
		Likes:     make(map[int64]struct{}, len(likedIDs)),
	}
	for _, id := range favoriteIDs {
		v.Favorites[id] = struct{}{}
	}
	for _, id := range likedIDs {
		v.Likes[id] = struct{}{}
	}
	return v
}

// IsAnonymous reports whether no user is signed in.
func (v Viewer) IsAnonymous() bool {
	return v.UserID == 0
}

// HasFavorited reports whether restaurantID is in the viewer's favorites.
func (v Viewer) HasFavorited(restaurantID int64) bool {
	_, ok := v.Favorites[restaurantID]
	return ok
}

// HasLiked reports whether restaurantID is in the viewer's likes.
func (v Viewer) HasLiked(restaurantID int64) bool {
	_, ok := v.Likes[restaurantID]
	return ok
}
