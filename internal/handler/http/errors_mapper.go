// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-coin-favorites/internal/logger"
	"github.com/MKhiriev/go-coin-favorites/internal/service"
	"github.com/MKhiriev/go-coin-favorites/internal/utils"
	"github.com/MKhiriev/go-coin-favorites/internal/validators"
	"github.com/MKhiriev/go-coin-favorites/models"
)

const internalErrorMessage = "Internal server error"

var errorStatusMap = map[error]int{
	service.ErrInvalidInput: http.StatusBadRequest,
	service.ErrConflict:     http.StatusConflict,
	service.ErrUnauthorized: http.StatusUnauthorized,
	service.ErrNotFound:     http.StatusNotFound,

	ErrInvalidJSON:     http.StatusBadRequest,
	ErrRequestTooLarge: http.StatusRequestEntityTooLarge,
	ErrRouteNotFound:   http.StatusNotFound,
}

// errorMessages is checked in order, so specific errors come before the
// kinds they wrap.
var errorMessages = []struct {
	err     error
	message string
}{
	{service.ErrTokenMissing, "Authorization token is required"},
	{service.ErrTokenExpired, "Token has expired"},
	{service.ErrTokenInvalid, "Invalid token"},
	{service.ErrUnknownSubject, "Invalid token"},
	{service.ErrInvalidCredentials, "Invalid email or password"},

	{service.ErrEmailTaken, "User with this email already exists"},
	{service.ErrAlreadyFavorited, "Cryptocurrency already in favorites"},
	{service.ErrFavoriteNotFound, "Favorite not found"},

	{service.ErrMissingCredentials, "Email and password are required"},
	{service.ErrInvalidEmail, "Invalid email format"},
	{service.ErrPasswordTooShort, passwordTooShortMessage(validators.DefaultPasswordMinLength)},
	{service.ErrMissingFields, "Missing required fields"},
	{service.ErrInvalidDataProvided, "Invalid request data"},
	{ErrInvalidJSON, "Invalid JSON was passed"},
	{ErrRequestTooLarge, "Request body is too large"},
	{ErrRouteNotFound, "Resource not found"},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func passwordTooShortMessage(minLength int) string {
	return fmt.Sprintf("Password must be at least %d characters long", minLength)
}

func messageFromError(err error) string {
	var tooShort *validators.PasswordTooShortError
	if errors.As(err, &tooShort) {
		return passwordTooShortMessage(tooShort.MinLength)
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return internalErrorMessage
}

// writeError responds with the status and message mapped from err. Internal
// errors are logged with detail and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := internalErrorMessage
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Int("status", status).Msg("internal error")
	} else {
		message = messageFromError(err)
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Error: message}, status); writeErr != nil {
		log.Err(writeErr).Msg("writing error response failed")
	}
}

// decodeRequest decodes the JSON body of r into dst and classifies a failure
// as ErrRequestTooLarge or ErrInvalidJSON.
func decodeRequest(r *http.Request, dst any) error {
	err := utils.DecodeJSON(r, dst)
	if err == nil {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: %w", ErrRequestTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
