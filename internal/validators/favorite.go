// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-coin-favorites/models"
)

// Field name constants accepted by [FavoriteValidator].
const (
	FieldItemID = "crypto_id"
	FieldName   = "crypto_name"
	FieldSymbol = "crypto_symbol"
	FieldImage  = "crypto_image"
	FieldPrice  = "current_price"
)

// Column limits of the favorites table.
const (
	MaxItemIDLength = 100
	MaxNameLength   = 100
	MaxSymbolLength = 20
	MaxImageLength  = 255
)

// FavoriteValidator validates [models.AddFavoriteRequest] values.
type FavoriteValidator struct {
}

// NewFavoriteValidator constructs a new FavoriteValidator
// and returns it as the Validator interface.
func NewFavoriteValidator() Validator {
	return &FavoriteValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted.
//
// Default fields: crypto_id, crypto_name, crypto_symbol, crypto_image, current_price
func (v *FavoriteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AddFavoriteRequest:
		return v.validateAddRequest(ctx, value, fields...)
	case *models.AddFavoriteRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAddRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FavoriteValidator) validateAddRequest(ctx context.Context, request models.AddFavoriteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID, FieldName, FieldSymbol, FieldImage, FieldPrice}
	}

	return v.validateFields(ctx, request.ItemID, request.Snapshot, fields)
}

func (v *FavoriteValidator) validateFields(_ context.Context, itemID string, snapshot models.Snapshot, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldItemID:
			if strings.TrimSpace(itemID) == "" {
				return ErrEmptyItemID
			}
			if utf8.RuneCountInString(itemID) > MaxItemIDLength {
				return ErrItemIDTooLong
			}
		case FieldName:
			if strings.TrimSpace(snapshot.Name) == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(snapshot.Name) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldSymbol:
			if strings.TrimSpace(snapshot.Symbol) == "" {
				return ErrEmptySymbol
			}
			if utf8.RuneCountInString(snapshot.Symbol) > MaxSymbolLength {
				return ErrSymbolTooLong
			}
		case FieldImage:
			if utf8.RuneCountInString(snapshot.Image) > MaxImageLength {
				return ErrImageTooLong
			}
		case FieldPrice:
			if snapshot.Price != nil && *snapshot.Price < 0 {
				return ErrNegativePrice
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
