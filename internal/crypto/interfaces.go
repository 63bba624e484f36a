// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the server-side credential primitives: the password
// hasher that turns plaintext passwords into salted digests and the session
// issuer that mints and validates bearer tokens.
//
// Neither component knows anything about storage or HTTP. Both are
// configured from [config.App] at startup and are safe for concurrent use.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "github.com/MKhiriev/go-coin-favorites/models"

// PasswordHasher derives and verifies salted password digests.
//
// Scheme:
//
//	salt   = GenerateSalt()                          (32 random bytes)
//	digest = Hash(password, salt)                    (PBKDF2-HMAC-SHA256)
//	ok     = Verify(password, salt, digest, iters)   (constant-time compare)
type PasswordHasher interface {
	// GenerateSalt returns a fresh random salt read from the OS CSPRNG.
	GenerateSalt() ([]byte, error)

	// Hash derives the digest of password with salt using the configured
	// work factor. The same inputs always yield the same digest.
	Hash(password string, salt []byte) []byte

	// HashWithIterations derives the digest with an explicit work factor.
	// Used to verify records created under an older work factor.
	HashWithIterations(password string, salt []byte, iterations int) []byte

	// Verify recomputes the digest of password and compares it with digest
	// in constant time.
	Verify(password string, salt, digest []byte, iterations int) bool

	// Iterations returns the work factor applied by Hash.
	Iterations() int
}

// SessionIssuer mints and validates bearer tokens bound to a user identity.
type SessionIssuer interface {
	// Issue returns a signed token for subjectID that expires after the
	// configured duration.
	Issue(subjectID string) (models.Token, error)

	// Validate checks the signature, issuer and expiry of rawToken and
	// returns the subject it was issued for. Errors are one of
	// [ErrTokenMissing], [ErrTokenExpired] or [ErrTokenInvalid].
	Validate(rawToken string) (string, error)
}
