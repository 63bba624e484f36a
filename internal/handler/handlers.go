// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the inbound transport handlers of the server.
package handler

import (
	"github.com/MKhiriev/go-coin-favorites/internal/config"
	"github.com/MKhiriev/go-coin-favorites/internal/handler/http"
	"github.com/MKhiriev/go-coin-favorites/internal/logger"
	"github.com/MKhiriev/go-coin-favorites/internal/metrics"
	"github.com/MKhiriev/go-coin-favorites/internal/service"
)

type Handlers struct {
	HTTP    *http.Handler
	Metrics *metrics.Metrics
}

// NewHandlers builds the HTTP handler for cfg.HTTPAddress. A nil m gets a
// fresh metrics registry shared by every handler.
func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	if m == nil {
		m = metrics.NewMetrics()
	}

	return &Handlers{
		HTTP:    http.NewHandler(services, m, cfg, logger),
		Metrics: m,
	}, nil
}
