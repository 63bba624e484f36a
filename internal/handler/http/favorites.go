// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-coin-favorites/internal/utils"
	"github.com/MKhiriev/go-coin-favorites/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := authenticatedUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	favorites, err := h.services.FavoritesService.ListFavorites(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FavoritesResponse{
		Favorites: favorites,
		Count:     len(favorites),
	}, http.StatusOK)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := authenticatedUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.AddFavoriteRequest
	if err = decodeRequest(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	favorite, err := h.services.FavoritesService.AddFavorite(r.Context(), userID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FavoriteResponse{
		Message:  "Added to favorites successfully",
		Favorite: favorite,
	}, http.StatusCreated)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := authenticatedUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	itemID := chi.URLParam(r, "itemID")

	if err = h.services.FavoritesService.RemoveFavorite(r.Context(), userID, itemID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Removed from favorites successfully"}, http.StatusOK)
}
