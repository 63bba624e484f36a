// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-coin-favorites/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestSize(utils.MaxRequestBodyBytes))
	router.Use(cors.Handler(h.corsOptions()))
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Get("/api/favorites", h.listFavorites)
		r.Post("/api/favorites", h.addFavorite)
		r.Delete("/api/favorites/{itemID}", h.removeFavorite)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origins := h.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}
}
