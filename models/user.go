// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// User is an identity record of a registered account.
// Credential fields never leave the server: they are excluded from JSON.
type User struct {
	// ID is the opaque, immutable identifier generated at registration.
	ID string `json:"id"`

	// Email is the normalized (trimmed, lower-cased) login of the user.
	// It is unique across all users.
	Email string `json:"email"`

	// PasswordHash is the PBKDF2 digest of the user's password.
	PasswordHash []byte `json:"-"`

	// PasswordSalt is the random salt the digest was derived with.
	PasswordSalt []byte `json:"-"`

	// PasswordIterations is the work factor the digest was derived with.
	// Stored per record so that the configured work factor can be raised
	// without invalidating existing hashes.
	PasswordIterations int `json:"-"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every successful login.
	UpdatedAt time.Time `json:"-"`

	// FavoritesCount is filled only by the whoami flow.
	FavoritesCount *int `json:"favorites_count,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the email/password pair sent on registration and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the result of a successful registration or login.
type Session struct {
	User  User
	Token Token
}

// NormalizeEmail trims surrounding whitespace and lower-cases email so that
// "Foo@Bar.com " and "foo@bar.com" identify the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
