// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the server and applies it with
// goose. One migration set is kept per supported database dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

// Dialect names a supported database backend.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations of dialect to db.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	provider, err := newProvider(db, dialect)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Version returns the schema version currently applied to db.
func Version(ctx context.Context, db *sql.DB, dialect Dialect) (int64, error) {
	if db == nil {
		return 0, errors.New("migration error: db is nil")
	}

	provider, err := newProvider(db, dialect)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	return provider.GetDBVersion(ctx)
}

func newProvider(db *sql.DB, dialect Dialect) (*goose.Provider, error) {
	var gooseDialect database.Dialect
	switch dialect {
	case DialectPostgres:
		gooseDialect = database.DialectPostgres
	case DialectSQLite:
		gooseDialect = database.DialectSQLite3
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}

	migrationsFS, err := fs.Sub(embedMigrations, string(dialect))
	if err != nil {
		return nil, err
	}

	return goose.NewProvider(gooseDialect, db, migrationsFS)
}
