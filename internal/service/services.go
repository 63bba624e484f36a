// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-coin-favorites/internal/config"
	"github.com/MKhiriev/go-coin-favorites/internal/crypto"
	"github.com/MKhiriev/go-coin-favorites/internal/logger"
	"github.com/MKhiriev/go-coin-favorites/internal/store"
	"github.com/MKhiriev/go-coin-favorites/internal/utils"
)

type Services struct {
	AuthService      AuthService
	FavoritesService FavoritesService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	idGenerator := utils.NewUUIDGenerator()

	authService := NewAuthService(
		storages.UserRepository,
		storages.FavoriteRepository,
		crypto.NewPasswordHasher(cfg.App.PasswordIterations),
		crypto.NewSessionIssuer(cfg.App),
		idGenerator,
		cfg.App,
		logger,
	)

	favoritesService := NewFavoritesValidationService().Wrap(
		NewFavoritesService(storages.FavoriteRepository, idGenerator, logger),
	)

	return &Services{
		AuthService:      authService,
		FavoritesService: favoritesService,
		AppInfoService:   appInfoService,
	}, nil
}
