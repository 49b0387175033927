// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/config"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
)

// ClientStorages groups the device-local storage of the sync client.
type ClientStorages struct {
	// LocalEntries is the SQLite key/value table shared with the game.
	LocalEntries LocalEntryRepository

	// Path is the database file, watched for external mutations.
	Path string

	db *DB
}

// NewClientStorages opens (creating if needed) the local SQLite file and
// applies pending migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Str("dsn", cfg.DB.DSN).Msg("opening local storage")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		LocalEntries: NewLocalEntryRepository(db, logger),
		Path:         cfg.DB.DSN,
		db:           db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
