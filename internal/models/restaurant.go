// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package models

import (
	"time"
	"unicode/utf8"
)

// DescriptionPreviewLength is the number of characters kept in list and ranking views.
const DescriptionPreviewLength = 50

// Category groups restaurants by cuisine.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// User is the public view of an account. The password hash never leaves the database package.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// Restaurant is a full restaurant row with its category.
type Restaurant struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Tel          string    `json:"tel"`
	Address      string    `json:"address"`
	OpeningHours string    `json:"openingHours"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	ViewCounts   int64     `json:"viewCounts"`
	CategoryID   int64     `json:"categoryId"`
	Category     *Category `json:"category,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Comment is a user's comment on a restaurant.
type Comment struct {
	ID           int64       `json:"id"`
	Text         string      `json:"text"`
	UserID       int64       `json:"userId"`
	RestaurantID int64       `json:"restaurantId"`
	User         *User       `json:"user,omitempty"`
	Restaurant   *Restaurant `json:"restaurant,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// RestaurantListItem is a restaurant row as shown on the paginated index.
type RestaurantListItem struct {
	Restaurant
	IsFavorited bool `json:"isFavorited"`
	IsLiked     bool `json:"isLiked"`
}

// RestaurantSummary is one entry of the top restaurants ranking.
type RestaurantSummary struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	FavoritedCount int64  `json:"favoritedCount"`
	IsFavorited    bool   `json:"isFavorited"`
}

// RestaurantDetail is a restaurant with everything shown on its page.
type RestaurantDetail struct {
	Restaurant
	Comments       []Comment `json:"comments"`
	FavoritedUsers []User    `json:"favoritedUsers"`
	LikedUsers     []User    `json:"likedUsers"`
}

// Dashboard is a restaurant with its comments, without viewer state.
type Dashboard struct {
	Restaurant
	Comments     []Comment `json:"comments"`
	CommentCount int       `json:"commentCount"`
}

// Feeds holds the newest restaurants and comments.
type Feeds struct {
	Restaurants []Restaurant `json:"restaurants"`
	Comments    []Comment    `json:"comments"`
}

// TruncateDescription returns the first DescriptionPreviewLength characters of s.
// Truncation counts runes, so multi-byte text is never cut mid-character.
func TruncateDescription(s string) string {
	if utf8.RuneCountInString(s) <= DescriptionPreviewLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:DescriptionPreviewLength])
}
