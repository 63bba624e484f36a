// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-coin-favorites/internal/logger"
	"github.com/MKhiriev/go-coin-favorites/internal/metrics"
	"github.com/MKhiriev/go-coin-favorites/internal/service"
	"github.com/MKhiriev/go-coin-favorites/internal/utils"
	"github.com/MKhiriev/go-coin-favorites/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeRequest(r, &credentials); err != nil {
		h.metrics.RecordAuthEvent(metrics.EventRegister, metrics.OutcomeRejected)
		writeError(w, r, err)
		return
	}

	session, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		h.metrics.RecordAuthEvent(metrics.EventRegister, authOutcome(err))
		writeError(w, r, err)
		return
	}
	h.metrics.RecordAuthEvent(metrics.EventRegister, metrics.OutcomeSuccess)

	log.Debug().Str("user_id", session.User.ID).Msg("user successfully registered")

	h.writeSession(w, r, "User created successfully", session, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeRequest(r, &credentials); err != nil {
		h.metrics.RecordAuthEvent(metrics.EventLogin, metrics.OutcomeRejected)
		writeError(w, r, err)
		return
	}

	session, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.metrics.RecordAuthEvent(metrics.EventLogin, authOutcome(err))
		writeError(w, r, err)
		return
	}
	h.metrics.RecordAuthEvent(metrics.EventLogin, metrics.OutcomeSuccess)

	log.Debug().Str("user_id", session.User.ID).Msg("user successfully logged in")

	h.writeSession(w, r, "Login successful", session, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, err := authenticatedUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.WhoAmI(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

// writeSession sends the token both in the Authorization header and in the
// body.
func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request, message string, session models.Session, status int) {
	token := session.Token.String()

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
	if _, err := utils.WriteJSON(w, models.AuthResponse{
		Message:     message,
		AccessToken: token,
		User:        session.User,
	}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing session response failed")
	}
}

func authOutcome(err error) string {
	if errors.Is(err, service.ErrInvalidInput) ||
		errors.Is(err, service.ErrConflict) ||
		errors.Is(err, service.ErrUnauthorized) {
		return metrics.OutcomeRejected
	}
	return metrics.OutcomeError
}
