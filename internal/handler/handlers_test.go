// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/go-coin-favorites/internal/config"
	"github.com/MKhiriev/go-coin-favorites/internal/logger"
	"github.com/MKhiriev/go-coin-favorites/internal/metrics"
	"github.com/MKhiriev/go-coin-favorites/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer, so nil is safe for construction-time tests.
func newTestServices() *service.Services {
	return nil
}

// TestNewHandlers_HTTP verifies that a configured HTTP address yields an
// initialised HTTP handler.
func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":5000"}

	h, err := NewHandlers(newTestServices(), nil, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.NotNil(t, h.Metrics, "expected a metrics registry to be created")
}

// TestNewHandlers_KeepsGivenMetrics verifies that a caller supplied metrics
// registry is used as is.
func TestNewHandlers_KeepsGivenMetrics(t *testing.T) {
	m := metrics.NewMetrics()

	h, err := NewHandlers(newTestServices(), m, config.Server{HTTPAddress: ":5000"}, logger.Nop())

	require.NoError(t, err)
	assert.Same(t, m, h.Metrics)
}

// TestNewHandlers_NoAddress verifies that without an HTTP address
// NewHandlers returns errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_IndependentInstances verifies that two calls to NewHandlers
// produce independent *Handlers instances.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":5000"}

	h1, err1 := NewHandlers(newTestServices(), nil, cfg, logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), nil, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
