// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var fixedNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := "0190b5a4-7f3c-7000-8000-000000000123"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, fixedNow, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Issuer)
	}
	if token.Subject != userID {
		t.Errorf("expected subject %s, got %s", userID, token.Subject)
	}
	if token.UserID != userID {
		t.Errorf("expected UserID %s, got %s", userID, token.UserID)
	}
	if !token.ExpiresAt.Time.Equal(fixedNow.Add(duration)) {
		t.Errorf("expected exp %v, got %v", fixedNow.Add(duration), token.ExpiresAt.Time)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u1", time.Hour, "key"},
		{"empty subject", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "u1", 0, "key"},
		{"negative duration", "iss", "u1", -time.Second, "key"},
		{"empty key", "iss", "u1", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, fixedNow, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := "user-456"
	key := "secret-key"

	genToken, err := GenerateJWTToken(issuer, userID, fixedNow, 5*time.Minute, key)
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer, clockAt(fixedNow.Add(time.Minute)))

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %s, got %s", userID, parsedToken.UserID)
	}
	if parsedToken.SignedString != genToken.SignedString {
		t.Error("expected parsed token to keep its signed string")
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "u1", fixedNow, time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer", clockAt(fixedNow))
	if err == nil {
		t.Fatal("expected error due to signature mismatch, got nil")
	}
	if errors.Is(err, jwt.ErrTokenExpired) {
		t.Error("signature mismatch must not be reported as expiry")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "u1", fixedNow, time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer", clockAt(fixedNow.Add(time.Hour+time.Second)))
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired in chain, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "u1", fixedNow, time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer", clockAt(fixedNow))
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss", clockAt(fixedNow))
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "u1",
		IssuedAt:  jwt.NewNumericDate(fixedNow),
		ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("unexpected error signing: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(signed, "key", "iss", clockAt(fixedNow)); err == nil {
		t.Error("expected HS512 token to be rejected, got nil")
	}
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	claims := jwt.RegisteredClaims{Issuer: "iss", Subject: "u1"}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))

	if _, err := ValidateAndParseJWTToken(signed, "key", "iss", clockAt(fixedNow)); err == nil {
		t.Error("expected token without exp to be rejected, got nil")
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	claims := jwt.RegisteredClaims{Issuer: "iss", ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Hour))}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))

	if _, err := ValidateAndParseJWTToken(signed, "key", "iss", clockAt(fixedNow)); err == nil {
		t.Error("expected token without subject to be rejected, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lower case scheme", header: "bearer abc", want: "abc"},
		{name: "extra spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "too many parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Errorf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
