// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-coin-favorites/models"
)

// Field name constants accepted by [CredentialsValidator].
const (
	// FieldEmail requires a non-blank email.
	FieldEmail = "email"

	// FieldEmailFormat requires the email to contain '@' and to be at least
	// MinEmailLength characters long.
	FieldEmailFormat = "email_format"

	// FieldPassword requires a non-empty password.
	FieldPassword = "password"

	// FieldPasswordLength requires the password to be at least the
	// configured minimum length.
	FieldPasswordLength = "password_length"
)

// MinEmailLength is the shortest email accepted at registration.
const MinEmailLength = 5

// DefaultPasswordMinLength is used when the validator is built with a
// non-positive minimum.
const DefaultPasswordMinLength = 6

// RegistrationFields is the field set checked when an account is created.
var RegistrationFields = []string{FieldEmail, FieldPassword, FieldEmailFormat, FieldPasswordLength}

// LoginFields is the field set checked on login. Only presence is checked so
// that a login attempt never reveals the registration rules.
var LoginFields = []string{FieldEmail, FieldPassword}

// CredentialsValidator validates [models.Credentials].
type CredentialsValidator struct {
	passwordMinLength int
}

// NewCredentialsValidator constructs a validator enforcing passwordMinLength
// characters for new passwords.
func NewCredentialsValidator(passwordMinLength int) Validator {
	if passwordMinLength < 1 {
		passwordMinLength = DefaultPasswordMinLength
	}

	return &CredentialsValidator{passwordMinLength: passwordMinLength}
}

// Validate accepts models.Credentials or *models.Credentials. When no fields
// are given, RegistrationFields are checked.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = RegistrationFields
	}

	email := strings.TrimSpace(credentials.Email)

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if email == "" {
				return ErrEmptyEmail
			}
		case FieldEmailFormat:
			if !strings.Contains(email, "@") || utf8.RuneCountInString(email) < MinEmailLength {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPasswordLength:
			if utf8.RuneCountInString(credentials.Password) < v.passwordMinLength {
				return &PasswordTooShortError{MinLength: v.passwordMinLength}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
