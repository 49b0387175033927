// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/migrations"
)

const (
	driverSQLite   = "sqlite3"
	driverPostgres = "pgx"
)

// Retry policy for statements whose failure is classified as Retryable.
const (
	maxAttempts  = 3
	retryBackoff = 100 * time.Millisecond
)

// DB wraps *sql.DB with the driver name, an error classifier and a logger.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded migrations of the DB's driver.
func (db *DB) Migrate() error {
	if db.driver == driverPostgres {
		return migrations.MigratePostgres(db.DB)
	}
	return migrations.MigrateSQLite(db.DB)
}

// withRetry runs fn until it succeeds, fails with a non-retryable error, the
// attempts are exhausted or ctx is done.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retryable database error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}
	return err
}
