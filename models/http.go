// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// UserResponse is returned by the whoami endpoint.
type UserResponse struct {
	User User `json:"user"`
}

// FavoritesResponse lists the favorites of the caller.
type FavoritesResponse struct {
	Favorites []Favorite `json:"favorites"`
	Count     int        `json:"count"`
}

// FavoriteResponse is returned after a favorite was added.
type FavoriteResponse struct {
	Message  string   `json:"message"`
	Favorite Favorite `json:"favorite"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}
