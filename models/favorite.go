// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Snapshot is the display data of a coin captured when it was favorited.
// It is an advisory cache and is never refreshed afterwards.
type Snapshot struct {
	Name   string   `json:"crypto_name"`
	Symbol string   `json:"crypto_symbol"`
	Image  string   `json:"crypto_image,omitempty"`
	Price  *float64 `json:"current_price,omitempty"`
}

// Favorite is a single entry of a user's favorites set.
// The pair (OwnerID, ItemID) is unique.
type Favorite struct {
	// ID is the opaque identifier of the record.
	ID string `json:"id"`

	// OwnerID references the owning User. It is never taken from the client.
	OwnerID string `json:"-"`

	// ItemID is the external coin identifier (e.g. "bitcoin").
	ItemID string `json:"crypto_id"`

	Snapshot

	// AddedAt defines the default ordering (most recent first).
	AddedAt time.Time `json:"added_at"`
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "favorites"
}

// AddFavoriteRequest is the body of an "add favorite" call.
type AddFavoriteRequest struct {
	ItemID string `json:"crypto_id"`
	Snapshot
}
