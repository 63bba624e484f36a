// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRequestTooLarge is returned when a request body exceeds the size limit.
	ErrRequestTooLarge = errors.New("request body is too large")

	// ErrRouteNotFound is reported for unknown paths and unsupported methods.
	ErrRouteNotFound = errors.New("resource not found")

	// ErrNoAuthenticatedUser means a protected handler ran without the auth
	// middleware having stored a user ID. It is a wiring bug, reported as 500.
	ErrNoAuthenticatedUser = errors.New("no authenticated user in request context")
)
