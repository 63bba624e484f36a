// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-coin-favorites/internal/crypto"
)

// Error kinds. Every error returned by a service that is caused by the
// caller wraps exactly one of them; anything else is an internal failure.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

var (
	ErrInvalidDataProvided = fmt.Errorf("%w: invalid data provided", ErrInvalidInput)
	ErrMissingCredentials  = fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	ErrMissingFields       = fmt.Errorf("%w: missing required fields", ErrInvalidInput)
	ErrInvalidEmail        = fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	ErrPasswordTooShort    = fmt.Errorf("%w: password is too short", ErrInvalidInput)

	ErrEmailTaken       = fmt.Errorf("%w: user with this email already exists", ErrConflict)
	ErrAlreadyFavorited = fmt.Errorf("%w: item already in favorites", ErrConflict)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrTokenMissing       = fmt.Errorf("%w: %w", ErrUnauthorized, crypto.ErrTokenMissing)
	ErrTokenExpired       = fmt.Errorf("%w: %w", ErrUnauthorized, crypto.ErrTokenExpired)
	ErrTokenInvalid       = fmt.Errorf("%w: %w", ErrUnauthorized, crypto.ErrTokenInvalid)
	ErrUnknownSubject     = fmt.Errorf("%w: token subject does not exist", ErrUnauthorized)

	ErrFavoriteNotFound = fmt.Errorf("%w: favorite not found", ErrNotFound)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
