// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/store"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

type syncStatusTracker struct {
	entries store.LocalEntryRepository
	logger  *logger.Logger

	now func() time.Time
}

// NewSyncStatusTracker returns a [SyncStatusTracker] persisted as JSON under
// [models.KeySyncStatus].
func NewSyncStatusTracker(entries store.LocalEntryRepository, logger *logger.Logger) SyncStatusTracker {
	return &syncStatusTracker{
		entries: entries,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (t *syncStatusTracker) Status(ctx context.Context) models.SyncStatus {
	raw, found, err := t.entries.Get(ctx, models.KeySyncStatus)
	if err != nil {
		t.logger.Err(err).Str("func", "syncStatusTracker.Status").Msg("failed to read sync status")
		return models.SyncStatus{}
	}
	if !found {
		return models.SyncStatus{}
	}

	var status models.SyncStatus
	if err := json.Unmarshal([]byte(raw), &status); err != nil || !status.Valid() {
		t.logger.Warn().
			AnErr("cause", err).
			Err(ErrMalformedLocalStatus).
			Str("raw", raw).
			Msg("resetting sync status to default")
		return models.SyncStatus{}
	}
	return status
}

func (t *syncStatusTracker) MarkSynced(ctx context.Context, userID string) error {
	now := t.now()
	status := models.SyncStatus{IsSynced: true, LastSyncedAt: &now, UserID: &userID}

	raw, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("encode sync status: %w", err)
	}
	if err := t.entries.Put(ctx, models.KeySyncStatus, string(raw)); err != nil {
		return fmt.Errorf("%w: persist sync status: %w", ErrLocalStore, err)
	}
	return nil
}

func (t *syncStatusTracker) Clear(ctx context.Context) error {
	if err := t.entries.Delete(ctx, models.KeySyncStatus); err != nil {
		return fmt.Errorf("%w: clear sync status: %w", ErrLocalStore, err)
	}
	return nil
}
