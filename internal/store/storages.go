// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/config"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
)

// Storages groups the cloud endpoint's repositories.
type Storages struct {
	CloudRecords CloudRecordRepository

	close func() error
}

// NewStorages connects the configured cloud record backend.
func NewStorages(ctx context.Context, cfg config.StructuredConfig, logger *logger.Logger) (*Storages, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.Storage.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return &Storages{
			CloudRecords: NewPostgresCloudRecordRepository(db, logger),
			close:        db.Close,
		}, nil

	case config.BackendFirestore:
		app, err := NewFirebaseApp(ctx, cfg.Firebase)
		if err != nil {
			return nil, err
		}
		client, err := app.Firestore(ctx)
		if err != nil {
			return nil, fmt.Errorf("error getting firestore client: %w", err)
		}
		logger.Info().Str("collection", cfg.Storage.Firestore.Collection).Msg("using firestore cloud records")
		return &Storages{
			CloudRecords: NewFirestoreCloudRecordRepository(client, cfg.Storage.Firestore.Collection, logger),
			close:        client.Close,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Storage.Backend)
}

// Close releases the backend connection.
func (s *Storages) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
