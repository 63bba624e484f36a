// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-coin-favorites/internal/config"
	"github.com/MKhiriev/go-coin-favorites/internal/logger"
	"github.com/MKhiriev/go-coin-favorites/internal/metrics"
	"github.com/MKhiriev/go-coin-favorites/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	corsOrigins    []string
	requestTimeout time.Duration
	now            func() time.Time

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil m gets a fresh metrics registry.
func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	if m == nil {
		m = metrics.NewMetrics()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		corsOrigins:    cfg.CORSOrigins,
		requestTimeout: cfg.RequestTimeout,
		now:            time.Now,
		logger:         logger,
	}
}
