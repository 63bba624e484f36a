// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-coin-favorites/models"
)

// AuthService registers users, verifies their credentials and resolves
// bearer tokens back to user IDs.
type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.Session, error)
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Authenticate resolves rawToken to the ID of the user it was issued for.
	// The token is checked without I/O; the user is then looked up once so
	// that a token of a deleted user is rejected.
	Authenticate(ctx context.Context, rawToken string) (string, error)

	// WhoAmI loads the user identified by userID together with the number of
	// favorites the user holds.
	WhoAmI(ctx context.Context, userID string) (models.User, error)
}

// FavoritesService manages the favorites of a single owner. The owner is
// always passed explicitly and is never read from request data.
type FavoritesService interface {
	ListFavorites(ctx context.Context, ownerID string) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, ownerID string, request models.AddFavoriteRequest) (models.Favorite, error)
	RemoveFavorite(ctx context.Context, ownerID, itemID string) error
}

// FavoritesServiceWrapper defines middleware composition for FavoritesService.
// Implementations wrap an existing FavoritesService to add behavior such as
// logging or validating.
type FavoritesServiceWrapper interface {
	Wrap(FavoritesService) FavoritesService // returns a decorated FavoritesService applying additional behavior
}

// AppInfoService reports static information about the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
