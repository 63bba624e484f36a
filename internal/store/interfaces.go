// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-coin-favorites/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user identities and their credential material.
type UserRepository interface {
	// CreateUser inserts user. Returns [ErrEmailAlreadyExists] when the
	// (normalized) email is already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user registered with email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given identifier or
	// [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// TouchLogin records a successful login at the given time.
	TouchLogin(ctx context.Context, userID string, at time.Time) error
}

// FavoriteRepository persists the per-user favorites sets. Every method is
// scoped by the owner identifier.
type FavoriteRepository interface {
	// ListFavorites returns the favorites of ownerID, most recently added
	// first. The result is never nil.
	ListFavorites(ctx context.Context, ownerID string) ([]models.Favorite, error)

	// AddFavorite inserts favorite. Returns [ErrFavoriteAlreadyExists] when
	// the owner already has the item and [ErrNoUserWasFound] when the owner
	// does not exist.
	AddFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error)

	// RemoveFavorite deletes the item of ownerID. Returns
	// [ErrFavoriteNotFound] when the owner has no such item.
	RemoveFavorite(ctx context.Context, ownerID, itemID string) error

	// CountFavorites returns the size of the favorites set of ownerID.
	CountFavorites(ctx context.Context, ownerID string) (int, error)
}

// ErrorClassificator inspects driver errors of a specific database backend.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification

	// Violation reports which integrity constraint err violated, if any.
	Violation(err error) ConstraintViolation
}
