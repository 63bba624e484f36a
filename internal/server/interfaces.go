// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT is
	// received and then shuts down gracefully.
	RunServer() error

	// Run serves requests until ctx is cancelled and then shuts down
	// gracefully. It returns early with an error if the listener cannot be
	// bound or serving fails.
	Run(ctx context.Context) error

	// Ready is closed once the listener is bound.
	Ready() <-chan struct{}

	// Addr returns the bound listener address, or nil before Ready.
	Addr() net.Addr
}
