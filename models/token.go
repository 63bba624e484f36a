// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed session token together with its decoded claims.
//
// It embeds [jwt.RegisteredClaims] so it can be passed directly to
// [jwt.ParseWithClaims]; the "sub" claim carries the user ID.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is a cached copy of the subject claim.
	UserID string `json:"-"`
}

// GetUserID returns the user identifier carried by the "sub" claim.
func (t *Token) GetUserID() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if subject == "" {
		return "", errors.New("token has no subject")
	}

	return subject, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
