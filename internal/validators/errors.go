// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password is too short")

	ErrEmptyItemID   = errors.New("crypto_id is required")
	ErrItemIDTooLong = errors.New("crypto_id is too long")
	ErrEmptyName     = errors.New("crypto_name is required")
	ErrNameTooLong   = errors.New("crypto_name is too long")
	ErrEmptySymbol   = errors.New("crypto_symbol is required")
	ErrSymbolTooLong = errors.New("crypto_symbol is too long")
	ErrImageTooLong  = errors.New("crypto_image is too long")
	ErrNegativePrice = errors.New("current_price must not be negative")
)

// PasswordTooShortError reports the minimum password length that was not
// met. It matches ErrPasswordTooShort with errors.Is.
type PasswordTooShortError struct {
	MinLength int
}

func (e *PasswordTooShortError) Error() string {
	return fmt.Sprintf("password must be at least %d characters long", e.MinLength)
}

func (e *PasswordTooShortError) Unwrap() error {
	return ErrPasswordTooShort
}
