// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"time"

	"github.com/MKhiriev/go-coin-favorites/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable     = "users"
	favoritesTable = "favorites"
)

var userColumns = []string{
	"id",
	"email",
	"password_hash",
	"password_salt",
	"password_iterations",
	"created_at",
	"updated_at",
}

var favoriteColumns = []string{
	"id",
	"owner_id",
	"item_id",
	"name",
	"symbol",
	"image",
	"price",
	"added_at",
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.ID,
			user.Email,
			user.PasswordHash,
			user.PasswordSalt,
			user.PasswordIterations,
			user.CreatedAt,
			user.UpdatedAt,
		).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func buildTouchLoginQuery(b sq.StatementBuilderType, userID string, at time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("updated_at", at).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildInsertFavoriteQuery(b sq.StatementBuilderType, favorite models.Favorite) (string, []any, error) {
	var price sql.NullFloat64
	if favorite.Price != nil {
		price = sql.NullFloat64{Float64: *favorite.Price, Valid: true}
	}

	return b.Insert(favoritesTable).
		Columns(favoriteColumns...).
		Values(
			favorite.ID,
			favorite.OwnerID,
			favorite.ItemID,
			favorite.Name,
			favorite.Symbol,
			favorite.Image,
			price,
			favorite.AddedAt,
		).
		ToSql()
}

func buildListFavoritesQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	return b.Select(favoriteColumns...).
		From(favoritesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("added_at DESC", "id DESC").
		ToSql()
}

func buildDeleteFavoriteQuery(b sq.StatementBuilderType, ownerID, itemID string) (string, []any, error) {
	return b.Delete(favoritesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"item_id": itemID}).
		ToSql()
}

func buildCountFavoritesQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(favoritesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}
