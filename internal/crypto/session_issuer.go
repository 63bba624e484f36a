// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-coin-favorites/internal/config"
	"github.com/MKhiriev/go-coin-favorites/internal/utils"
	"github.com/MKhiriev/go-coin-favorites/models"
	"github.com/golang-jwt/jwt/v5"
)

// sessionIssuer is the private implementation of [SessionIssuer] backed by
// HS256 JWTs.
type sessionIssuer struct {
	signKey  string
	issuer   string
	duration time.Duration
	now      func() time.Time
}

// NewSessionIssuer constructs a [SessionIssuer] from the application config
// using the wall clock.
func NewSessionIssuer(cfg config.App) SessionIssuer {
	return NewSessionIssuerWithClock(cfg, time.Now)
}

// NewSessionIssuerWithClock is like [NewSessionIssuer] but reads the current
// time from now, which makes expiry deterministic in tests.
func NewSessionIssuerWithClock(cfg config.App, now func() time.Time) SessionIssuer {
	if now == nil {
		now = time.Now
	}

	return &sessionIssuer{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		now:      now,
	}
}

// Issue implements [SessionIssuer].
func (s *sessionIssuer) Issue(subjectID string) (models.Token, error) {
	return utils.GenerateJWTToken(s.issuer, subjectID, s.now(), s.duration, s.signKey)
}

// Validate implements [SessionIssuer].
func (s *sessionIssuer) Validate(rawToken string) (string, error) {
	if strings.TrimSpace(rawToken) == "" {
		return "", ErrTokenMissing
	}

	token, err := utils.ValidateAndParseJWTToken(rawToken, s.signKey, s.issuer, s.now)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	return token.UserID, nil
}
