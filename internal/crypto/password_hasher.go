// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltLength is the size of generated salts (256 bits).
	SaltLength = 32
	// KeyLength is the size of derived digests (256 bits).
	KeyLength = 32
	// DefaultIterations is used when the hasher is built with a
	// non-positive work factor.
	DefaultIterations = 100_000
)

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	iterations int
	keyLen     int
}

// NewPasswordHasher constructs a [PasswordHasher] applying PBKDF2-HMAC-SHA256
// with the given number of iterations to new digests.
func NewPasswordHasher(iterations int) PasswordHasher {
	if iterations < 1 {
		iterations = DefaultIterations
	}

	return &passwordHasher{
		iterations: iterations,
		keyLen:     KeyLength,
	}
}

// GenerateSalt implements [PasswordHasher]. It reads SaltLength random
// bytes from the OS CSPRNG. Returns an error if the random read fails.
func (h *passwordHasher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}

	return salt, nil
}

// Hash implements [PasswordHasher].
func (h *passwordHasher) Hash(password string, salt []byte) []byte {
	return h.HashWithIterations(password, salt, h.iterations)
}

// HashWithIterations implements [PasswordHasher].
func (h *passwordHasher) HashWithIterations(password string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, h.keyLen, sha256.New)
}

// Verify implements [PasswordHasher]. A record without a positive work
// factor or without a digest never verifies.
func (h *passwordHasher) Verify(password string, salt, digest []byte, iterations int) bool {
	if iterations < 1 || len(digest) == 0 {
		return false
	}

	computed := h.HashWithIterations(password, salt, iterations)
	return subtle.ConstantTimeCompare(computed, digest) == 1
}

// Iterations implements [PasswordHasher].
func (h *passwordHasher) Iterations() int {
	return h.iterations
}
