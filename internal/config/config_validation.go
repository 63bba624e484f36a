// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied to zero-valued settings after all sources are merged.
const (
	DefaultHTTPAddress        = "0.0.0.0:5000"
	DefaultTokenIssuer        = "coin-favorites"
	DefaultTokenDuration      = 24 * time.Hour
	DefaultPasswordIterations = 100_000
	DefaultPasswordMinLength  = 6
	DefaultQueryTimeout       = 5 * time.Second
	DefaultConnectRetries     = 5
	DefaultLogLevel           = "info"

	minTokenSignKeyLength = 16
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration <= 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordIterations <= 0 {
		cfg.App.PasswordIterations = DefaultPasswordIterations
	}
	if cfg.App.PasswordMinLength <= 0 {
		cfg.App.PasswordMinLength = DefaultPasswordMinLength
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Storage.DB.QueryTimeout <= 0 {
		cfg.Storage.DB.QueryTimeout = DefaultQueryTimeout
	}
	if cfg.Storage.DB.ConnectRetries == 0 {
		cfg.Storage.DB.ConnectRetries = DefaultConnectRetries
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.TokenSignKey) < minTokenSignKeyLength {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
