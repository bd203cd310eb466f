// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package database

import (
	"database/sql"

	"github.com/tomtom215/forkful/internal/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// restaurantWithCategoryColumns selects a restaurant (alias r) and its
// optional category (alias c). Pair with scanRestaurantWithCategory.
const restaurantWithCategoryColumns = `
	r.id, r.name, r.tel, r.address, r.opening_hours, r.description, r.image,
	r.view_counts, r.category_id, r.created_at, r.updated_at,
	c.id, c.name, c.created_at, c.updated_at`

func scanRestaurantWithCategory(s rowScanner) (models.Restaurant, error) {
	var (
		r          models.Restaurant
		categoryFK sql.NullInt64
		catID      sql.NullInt64
		catName    sql.NullString
		catCreated sql.NullTime
		catUpdated sql.NullTime
	)
	err := s.Scan(
		&r.ID, &r.Name, &r.Tel, &r.Address, &r.OpeningHours, &r.Description, &r.Image,
		&r.ViewCounts, &categoryFK, &r.CreatedAt, &r.UpdatedAt,
		&catID, &catName, &catCreated, &catUpdated,
	)
	if err != nil {
		return models.Restaurant{}, err
	}

	r.CategoryID = categoryFK.Int64
	if catID.Valid {
		r.Category = &models.Category{
			ID:        catID.Int64,
			Name:      catName.String,
			CreatedAt: catCreated.Time,
			UpdatedAt: catUpdated.Time,
		}
	}
	return r, nil
}

// commentWithUserColumns selects a comment (alias c) and its author (alias u).
const commentWithUserColumns = `
	c.id, c.text, c.user_id, c.restaurant_id, c.created_at,
	u.id, u.name, u.email, u.is_admin, u.created_at`

func scanCommentWithUser(s rowScanner, extra ...interface{}) (models.Comment, error) {
	var (
		cm          models.Comment
		userID      sql.NullInt64
		userName    sql.NullString
		userEmail   sql.NullString
		userIsAdmin sql.NullBool
		userCreated sql.NullTime
	)
	dest := []interface{}{
		&cm.ID, &cm.Text, &cm.UserID, &cm.RestaurantID, &cm.CreatedAt,
		&userID, &userName, &userEmail, &userIsAdmin, &userCreated,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return models.Comment{}, err
	}

	if userID.Valid {
		cm.User = &models.User{
			ID:        userID.Int64,
			Name:      userName.String,
			Email:     userEmail.String,
			IsAdmin:   userIsAdmin.Bool,
			CreatedAt: userCreated.Time,
		}
	}
	return cm, nil
}

const userColumns = `u.id, u.name, u.email, u.is_admin, u.created_at`

func scanUser(s rowScanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.Name, &u.Email, &u.IsAdmin, &u.CreatedAt)
	return u, err
}

const summaryColumns = `r.id, r.name, r.description, r.image`

// scanSummary maps a ranking row. Descriptions are truncated here so that no
// caller can forget to.
func scanSummary(s rowScanner) (models.RestaurantSummary, error) {
	var rs models.RestaurantSummary
	if err := s.Scan(&rs.ID, &rs.Name, &rs.Description, &rs.Image, &rs.FavoritedCount); err != nil {
		return models.RestaurantSummary{}, err
	}
	rs.Description = models.TruncateDescription(rs.Description)
	return rs, nil
}
