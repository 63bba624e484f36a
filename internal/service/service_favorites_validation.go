// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-coin-favorites/internal/validators"
	"github.com/MKhiriev/go-coin-favorites/models"
)

// FavoritesValidationService rejects malformed input before it reaches the
// wrapped FavoritesService.
type FavoritesValidationService struct {
	inner     FavoritesService
	validator validators.Validator
}

func NewFavoritesValidationService() FavoritesServiceWrapper {
	return &FavoritesValidationService{
		validator: validators.NewFavoriteValidator(),
	}
}

func (v *FavoritesValidationService) ListFavorites(ctx context.Context, ownerID string) ([]models.Favorite, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrUnknownSubject
	}

	return v.inner.ListFavorites(ctx, ownerID)
}

func (v *FavoritesValidationService) AddFavorite(ctx context.Context, ownerID string, request models.AddFavoriteRequest) (models.Favorite, error) {
	if strings.TrimSpace(ownerID) == "" {
		return models.Favorite{}, ErrUnknownSubject
	}

	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Favorite{}, favoriteValidationError(err)
	}

	return v.inner.AddFavorite(ctx, ownerID, request)
}

func (v *FavoritesValidationService) RemoveFavorite(ctx context.Context, ownerID, itemID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return ErrUnknownSubject
	}

	request := models.AddFavoriteRequest{ItemID: itemID}
	if err := v.validator.Validate(ctx, request, validators.FieldItemID); err != nil {
		return favoriteValidationError(err)
	}

	return v.inner.RemoveFavorite(ctx, ownerID, itemID)
}

func (v *FavoritesValidationService) Wrap(wrapped FavoritesService) FavoritesService {
	v.inner = wrapped
	return v
}

// favoriteValidationError reports absent required fields as ErrMissingFields
// and every other violation as ErrInvalidDataProvided.
func favoriteValidationError(err error) error {
	if errors.Is(err, validators.ErrEmptyItemID) ||
		errors.Is(err, validators.ErrEmptyName) ||
		errors.Is(err, validators.ErrEmptySymbol) {
		return fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
