// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connect error", err: &pgconn.ConnectError{}, want: Retryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "wrapped cannot connect now", err: fmt.Errorf("ping: %w", pgError(pgerrcode.CannotConnectNow)), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresErrorClassifier_Violation(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, UniqueViolation, c.Violation(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, UniqueViolation, c.Violation(fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation))))
	assert.Equal(t, ForeignKeyViolation, c.Violation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.Equal(t, NoViolation, c.Violation(pgError(pgerrcode.CheckViolation)))
	assert.Equal(t, NoViolation, c.Violation(errors.New("boom")))
	assert.Equal(t, NoViolation, c.Violation(nil))
}
