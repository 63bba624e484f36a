// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-coin-favorites/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_UsesRequestHeader(t *testing.T) {
	h := newTestHandler(nil)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, ok := utils.GetTraceIDFromContext(r.Context())
		require.True(t, ok)
		seen = traceID
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", seen)
	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesWhenMissing(t *testing.T) {
	h := newTestHandler(nil)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetTraceIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(traceIDHeader))
}
