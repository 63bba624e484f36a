// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-coin-favorites/internal/logger"
	"github.com/MKhiriev/go-coin-favorites/internal/store"
	"github.com/MKhiriev/go-coin-favorites/models"
)

type favoritesService struct {
	favoriteRepository store.FavoriteRepository
	idGenerator        IDGenerator
	now                func() time.Time

	logger *logger.Logger
}

func NewFavoritesService(favoriteRepository store.FavoriteRepository, idGenerator IDGenerator, logger *logger.Logger) FavoritesService {
	return &favoritesService{
		favoriteRepository: favoriteRepository,
		idGenerator:        idGenerator,
		now:                time.Now,
		logger:             logger,
	}
}

// ListFavorites returns the owner's favorites, most recently added first.
// The result is never nil.
func (f *favoritesService) ListFavorites(ctx context.Context, ownerID string) ([]models.Favorite, error) {
	favorites, err := f.favoriteRepository.ListFavorites(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner_id", ownerID).Msg("listing favorites failed")
		return nil, fmt.Errorf("listing favorites failed: %w", err)
	}

	if favorites == nil {
		favorites = []models.Favorite{}
	}

	return favorites, nil
}

// AddFavorite stores a new favorite for ownerID. The storage layer decides
// uniqueness atomically; a duplicate yields ErrAlreadyFavorited.
func (f *favoritesService) AddFavorite(ctx context.Context, ownerID string, request models.AddFavoriteRequest) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	favorite := models.Favorite{
		ID:      f.idGenerator.Generate(),
		OwnerID: ownerID,
		ItemID:  strings.TrimSpace(request.ItemID),
		Snapshot: models.Snapshot{
			Name:   strings.TrimSpace(request.Name),
			Symbol: strings.TrimSpace(request.Symbol),
			Image:  strings.TrimSpace(request.Image),
			Price:  request.Price,
		},
		AddedAt: f.now().UTC(),
	}

	added, err := f.favoriteRepository.AddFavorite(ctx, favorite)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrFavoriteAlreadyExists):
			log.Debug().Str("owner_id", ownerID).Str("item_id", favorite.ItemID).Msg("item already in favorites")
			return models.Favorite{}, ErrAlreadyFavorited
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Debug().Str("owner_id", ownerID).Msg("favorite owner does not exist")
			return models.Favorite{}, ErrUnknownSubject
		}
		log.Err(err).Str("owner_id", ownerID).Str("item_id", favorite.ItemID).Msg("adding favorite failed")
		return models.Favorite{}, fmt.Errorf("adding favorite failed: %w", err)
	}

	return added, nil
}

// RemoveFavorite deletes the favorite (ownerID, itemID). A favorite of another
// owner is indistinguishable from a missing one: both yield ErrFavoriteNotFound.
func (f *favoritesService) RemoveFavorite(ctx context.Context, ownerID, itemID string) error {
	log := logger.FromContext(ctx)

	err := f.favoriteRepository.RemoveFavorite(ctx, ownerID, strings.TrimSpace(itemID))
	if err != nil {
		if errors.Is(err, store.ErrFavoriteNotFound) {
			log.Debug().Str("owner_id", ownerID).Str("item_id", itemID).Msg("favorite not found")
			return ErrFavoriteNotFound
		}
		log.Err(err).Str("owner_id", ownerID).Str("item_id", itemID).Msg("removing favorite failed")
		return fmt.Errorf("removing favorite failed: %w", err)
	}

	return nil
}
