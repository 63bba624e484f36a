// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-coin-favorites/internal/config"
	"github.com/MKhiriev/go-coin-favorites/internal/logger"
	"github.com/MKhiriev/go-coin-favorites/migrations"
)

// connectRetryBase is the first delay of the exponential connect backoff.
const connectRetryBase = 500 * time.Millisecond

// NewConnectPostgres opens a PostgreSQL connection pool through the pgx
// database/sql driver. The first ping is retried with exponential backoff
// up to cfg.ConnectRetries times while the error is classified as
// [Retryable], so the server can start before the database is ready.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	classifier := NewPostgresErrorClassifier()
	attempt := 0
	backoff := retry.WithMaxRetries(cfg.ConnectRetries, retry.NewExponential(connectRetryBase))

	// ping database
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		pingErr := conn.PingContext(ctx)
		if pingErr == nil {
			return nil
		}

		if classifier.Classify(pingErr) == Retryable {
			log.Warn().Err(pingErr).
				Str("func", "NewConnectPostgres").
				Int("attempt", attempt).
				Msg("database is not reachable yet, retrying")
			return retry.RetryableError(pingErr)
		}

		return pingErr
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Int("attempts", attempt).Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Int("attempts", attempt).Msg("connected to database successfully")

	return newDB(conn, migrations.DialectPostgres, cfg.QueryTimeout, log), nil
}
