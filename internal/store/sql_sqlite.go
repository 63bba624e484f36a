// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-coin-favorites/internal/config"
	"github.com/MKhiriev/go-coin-favorites/internal/logger"
	"github.com/MKhiriev/go-coin-favorites/migrations"
)

// sqliteDefaultParams enables foreign keys (needed for ON DELETE CASCADE)
// and makes concurrent writers wait instead of failing with SQLITE_BUSY.
var sqliteDefaultParams = []string{"_foreign_keys=on", "_busy_timeout=5000"}

// NewConnectSQLite opens a SQLite database file, creating it if missing.
// The pool is limited to a single connection so every statement is
// serialized by database/sql.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	path, dsn := sqliteDSN(cfg.DSN)

	// db will be in file
	if path != "" {
		if err := createLocalDBFileIfNotExists(path); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return newDB(conn, migrations.DialectSQLite, cfg.QueryTimeout, log), nil
}

// sqliteDSN splits the file path out of dsn and appends the default
// connection parameters that dsn does not set already.
func sqliteDSN(dsn string) (path string, full string) {
	path, query, _ := strings.Cut(dsn, "?")
	if strings.HasPrefix(path, "file:") || path == ":memory:" {
		path = ""
	}

	params := make([]string, 0, len(sqliteDefaultParams)+1)
	if query != "" {
		params = append(params, query)
	}
	for _, param := range sqliteDefaultParams {
		key, _, _ := strings.Cut(param, "=")
		if !strings.Contains(query, key+"=") {
			params = append(params, param)
		}
	}

	base, _, _ := strings.Cut(dsn, "?")
	return path, base + "?" + strings.Join(params, "&")
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
