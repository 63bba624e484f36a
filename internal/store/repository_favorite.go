// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-coin-favorites/internal/logger"
	"github.com/MKhiriev/go-coin-favorites/models"
)

// favoriteRepository is the SQL implementation of [FavoriteRepository]
// over the "favorites" table. Every statement filters by owner_id, so one
// user can never read or delete another user's rows.
type favoriteRepository struct {
	*DB
	logger *logger.Logger
}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by the
// provided database connection and logger.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		DB:     db,
		logger: logger,
	}
}

// ListFavorites returns the favorites of ownerID ordered by added_at, most
// recent first. Records added within the same instant are ordered by their
// (time-ordered) id. Returns an empty slice when the owner has none.
func (f *favoriteRepository) ListFavorites(ctx context.Context, ownerID string) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	query, args, err := buildListFavoritesQuery(f.builder, ownerID)
	if err != nil {
		log.Err(err).Str("func", "favoriteRepository.ListFavorites").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "favoriteRepository.ListFavorites").
			Str("owner_id", ownerID).
			Msg("failed to execute query for listing favorites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0, 16)

	for rows.Next() {
		var (
			item  models.Favorite
			price sql.NullFloat64
		)

		scanErr := rows.Scan(
			&item.ID,
			&item.OwnerID,
			&item.ItemID,
			&item.Name,
			&item.Symbol,
			&item.Image,
			&price,
			&item.AddedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "favoriteRepository.ListFavorites").
				Str("owner_id", ownerID).
				Msg("failed to scan favorite row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if price.Valid {
			value := price.Float64
			item.Price = &value
		}

		favorites = append(favorites, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "favoriteRepository.ListFavorites").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return favorites, nil
}

// AddFavorite inserts favorite with a single INSERT inside a transaction.
// The unique index over (owner_id, item_id) makes the insert-if-absent
// atomic: of two concurrent adds of the same item exactly one succeeds.
// A failed insert leaves nothing behind.
func (f *favoriteRepository) AddFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	if favorite.AddedAt.IsZero() {
		favorite.AddedAt = time.Now().UTC()
	}

	query, args, err := buildInsertFavoriteQuery(f.builder, favorite)
	if err != nil {
		log.Err(err).Str("func", "favoriteRepository.AddFavorite").Msg("failed to build query")
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = f.withTx(ctx, func(tx *sql.Tx) error {
		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			switch f.errorClassificator.Violation(execErr) {
			case UniqueViolation:
				return ErrFavoriteAlreadyExists
			case ForeignKeyViolation:
				return ErrNoUserWasFound
			default:
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrFavoriteAlreadyExists) || errors.Is(err, ErrNoUserWasFound) {
			log.Debug().
				Err(err).
				Str("func", "favoriteRepository.AddFavorite").
				Str("owner_id", favorite.OwnerID).
				Str("item_id", favorite.ItemID).
				Msg("favorite rejected by constraint")
			return models.Favorite{}, err
		}
		log.Err(err).
			Str("func", "favoriteRepository.AddFavorite").
			Str("owner_id", favorite.OwnerID).
			Str("item_id", favorite.ItemID).
			Msg("failed to add favorite")
		return models.Favorite{}, err
	}

	log.Debug().
		Str("func", "favoriteRepository.AddFavorite").
		Str("owner_id", favorite.OwnerID).
		Str("item_id", favorite.ItemID).
		Msg("favorite added")
	return favorite, nil
}

// RemoveFavorite deletes the (ownerID, itemID) record. Returns
// [ErrFavoriteNotFound] when no row matched, which is also the outcome of
// trying to remove an item that only another owner has.
func (f *favoriteRepository) RemoveFavorite(ctx context.Context, ownerID, itemID string) error {
	log := logger.FromContext(ctx)

	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	query, args, err := buildDeleteFavoriteQuery(f.builder, ownerID, itemID)
	if err != nil {
		log.Err(err).Str("func", "favoriteRepository.RemoveFavorite").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := f.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "favoriteRepository.RemoveFavorite").
			Str("owner_id", ownerID).
			Str("item_id", itemID).
			Msg("failed to delete favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

// CountFavorites returns the number of favorites of ownerID.
func (f *favoriteRepository) CountFavorites(ctx context.Context, ownerID string) (int, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	query, args, err := buildCountFavoritesQuery(f.builder, ownerID)
	if err != nil {
		log.Err(err).Str("func", "favoriteRepository.CountFavorites").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := f.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "favoriteRepository.CountFavorites").Str("owner_id", ownerID).Msg("failed to count favorites")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
