// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-coin-favorites/internal/service"
	"github.com/MKhiriev/go-coin-favorites/internal/utils"
	"github.com/MKhiriev/go-coin-favorites/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withItemID sets the chi URL parameter the way the router does.
func withItemID(r *http.Request, itemID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("itemID", itemID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// listFavorites
// ─────────────────────────────────────────────

func TestListFavorites_Success(t *testing.T) {
	favs := &mockFavoritesService{
		listFn: func(_ context.Context, ownerID string) ([]models.Favorite, error) {
			assert.Equal(t, "user-1", ownerID)
			return []models.Favorite{
				{ID: "f-2", ItemID: "bitcoin", Snapshot: models.Snapshot{Name: "Bitcoin", Symbol: "BTC"}, AddedAt: fixedNow},
				{ID: "f-1", ItemID: "ethereum", Snapshot: models.Snapshot{Name: "Ethereum", Symbol: "ETH"}, AddedAt: fixedNow.Add(-time.Minute)},
			}, nil
		},
	}

	h := newTestHandler(&service.Services{FavoritesService: favs})
	req := withUser(httptest.NewRequest(http.MethodGet, "/api/favorites", nil), "user-1")
	rec := httptest.NewRecorder()

	h.listFavorites(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[models.FavoritesResponse](t, rec)
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Favorites, 2)
	assert.Equal(t, "bitcoin", body.Favorites[0].ItemID)
	assert.Contains(t, rec.Body.String(), `"crypto_id":"bitcoin"`)
	assert.Contains(t, rec.Body.String(), `"crypto_symbol":"BTC"`)
	assert.NotContains(t, rec.Body.String(), "user-1", "owner id is not part of the response")
}

func TestListFavorites_EmptyIsArray(t *testing.T) {
	favs := &mockFavoritesService{
		listFn: func(context.Context, string) ([]models.Favorite, error) {
			return []models.Favorite{}, nil
		},
	}

	h := newTestHandler(&service.Services{FavoritesService: favs})
	req := withUser(httptest.NewRequest(http.MethodGet, "/api/favorites", nil), "user-1")
	rec := httptest.NewRecorder()

	h.listFavorites(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"favorites":[],"count":0}`, rec.Body.String())
}

func TestListFavorites_InternalError(t *testing.T) {
	favs := &mockFavoritesService{
		listFn: func(context.Context, string) ([]models.Favorite, error) {
			return nil, errors.New("boom")
		},
	}

	h := newTestHandler(&service.Services{FavoritesService: favs})
	req := withUser(httptest.NewRequest(http.MethodGet, "/api/favorites", nil), "user-1")
	rec := httptest.NewRecorder()

	h.listFavorites(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeBody[models.ErrorResponse](t, rec).Error)
}

// ─────────────────────────────────────────────
// addFavorite
// ─────────────────────────────────────────────

func TestAddFavorite_Success(t *testing.T) {
	favs := &mockFavoritesService{
		addFn: func(_ context.Context, ownerID string, request models.AddFavoriteRequest) (models.Favorite, error) {
			assert.Equal(t, "user-1", ownerID)
			return models.Favorite{ID: "f-1", OwnerID: ownerID, ItemID: request.ItemID, Snapshot: request.Snapshot, AddedAt: fixedNow}, nil
		},
	}

	h := newTestHandler(&service.Services{FavoritesService: favs})
	body := `{"crypto_id":"ethereum","crypto_name":"Ethereum","crypto_symbol":"ETH","current_price":3100.25}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()

	h.addFavorite(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[models.FavoriteResponse](t, rec)
	assert.Equal(t, "Added to favorites successfully", resp.Message)
	assert.Equal(t, "ethereum", resp.Favorite.ItemID)
	assert.Equal(t, "ETH", resp.Favorite.Symbol)
	require.NotNil(t, resp.Favorite.Price)
	assert.Equal(t, 3100.25, *resp.Favorite.Price)
}

func TestAddFavorite_ClientCannotChooseOwner(t *testing.T) {
	favs := &mockFavoritesService{
		addFn: func(_ context.Context, ownerID string, request models.AddFavoriteRequest) (models.Favorite, error) {
			assert.Equal(t, "user-1", ownerID)
			return models.Favorite{OwnerID: ownerID, ItemID: request.ItemID}, nil
		},
	}

	h := newTestHandler(&service.Services{FavoritesService: favs})
	body := `{"crypto_id":"ethereum","crypto_name":"Ethereum","crypto_symbol":"ETH","owner_id":"user-2","user_id":"user-2"}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()

	h.addFavorite(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAddFavorite_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"bad json", `{"crypto_id":`, nil, http.StatusBadRequest, "Invalid JSON was passed"},
		{"trailing brace", `{"crypto_id":"ethereum"}}`, nil, http.StatusBadRequest, "Invalid JSON was passed"},
		{"body too large", `{"crypto_id":"` + strings.Repeat("e", utils.MaxRequestBodyBytes) + `"}`, nil, http.StatusRequestEntityTooLarge, "Request body is too large"},
		{"missing fields", `{"crypto_id":"ethereum"}`, service.ErrMissingFields, http.StatusBadRequest, "Missing required fields"},
		{"invalid data", `{"crypto_id":"x"}`, service.ErrInvalidDataProvided, http.StatusBadRequest, "Invalid request data"},
		{"duplicate", `{"crypto_id":"ethereum"}`, service.ErrAlreadyFavorited, http.StatusConflict, "Cryptocurrency already in favorites"},
		{"owner gone", `{"crypto_id":"ethereum"}`, service.ErrUnknownSubject, http.StatusUnauthorized, "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			favs := &mockFavoritesService{
				addFn: func(context.Context, string, models.AddFavoriteRequest) (models.Favorite, error) {
					if tt.err == nil {
						t.Fatal("service must not be called")
					}
					return models.Favorite{}, tt.err
				},
			}

			h := newTestHandler(&service.Services{FavoritesService: favs})
			req := withUser(httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(tt.body)), "user-1")
			rec := httptest.NewRecorder()

			h.addFavorite(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeBody[models.ErrorResponse](t, rec).Error)
		})
	}
}

// ─────────────────────────────────────────────
// removeFavorite
// ─────────────────────────────────────────────

func TestRemoveFavorite_Success(t *testing.T) {
	favs := &mockFavoritesService{
		removeFn: func(_ context.Context, ownerID, itemID string) error {
			assert.Equal(t, "user-1", ownerID)
			assert.Equal(t, "ethereum", itemID)
			return nil
		},
	}

	h := newTestHandler(&service.Services{FavoritesService: favs})
	req := httptest.NewRequest(http.MethodDelete, "/api/favorites/ethereum", nil)
	req = withItemID(withUser(req, "user-1"), "ethereum")
	rec := httptest.NewRecorder()

	h.removeFavorite(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Removed from favorites successfully", decodeBody[models.MessageResponse](t, rec).Message)
}

func TestRemoveFavorite_NotFound(t *testing.T) {
	favs := &mockFavoritesService{
		removeFn: func(context.Context, string, string) error {
			return service.ErrFavoriteNotFound
		},
	}

	h := newTestHandler(&service.Services{FavoritesService: favs})
	req := httptest.NewRequest(http.MethodDelete, "/api/favorites/ethereum", nil)
	req = withItemID(withUser(req, "user-2"), "ethereum")
	rec := httptest.NewRecorder()

	h.removeFavorite(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Favorite not found", decodeBody[models.ErrorResponse](t, rec).Error)
}
