// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-coin-favorites/internal/logger"
	"github.com/MKhiriev/go-coin-favorites/internal/metrics"
	"github.com/MKhiriev/go-coin-favorites/internal/service"
	"github.com/MKhiriev/go-coin-favorites/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, resolves it via
// [service.AuthService.Authenticate] and, on success, stores the user ID in
// the request context under [utils.UserIDCtxKey] before delegating to the
// next handler.
//
// Requests are rejected with 401 and one of three messages:
//   - no header at all: "Authorization token is required"
//   - expired token: "Token has expired"
//   - anything else, including a header that is not "Bearer <token>": "Invalid token"
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		var rawToken string
		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			token, err := utils.ParseBearerToken(authHeader)
			if err != nil {
				log.Debug().Err(err).Msg("malformed Authorization header")
				h.metrics.RecordAuthEvent(metrics.EventTokenRejects, metrics.OutcomeRejected)
				writeError(w, r, service.ErrTokenInvalid)
				return
			}
			rawToken = token
		}

		userID, err := h.services.AuthService.Authenticate(ctx, rawToken)
		if err != nil {
			h.metrics.RecordAuthEvent(metrics.EventTokenRejects, metrics.OutcomeRejected)
			writeError(w, r, err)
			return
		}

		ctx = utils.WithUserID(ctx, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticatedUserID returns the user ID stored by auth.
func authenticatedUserID(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", ErrNoAuthenticatedUser
	}
	return userID, nil
}
