// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-coin-favorites/internal/logger"

// Storages groups the repositories built over a single database connection.
type Storages struct {
	UserRepository     UserRepository
	FavoriteRepository FavoriteRepository
}

// NewStorages builds every repository over db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		FavoriteRepository: NewFavoriteRepository(db, log),
	}
}
