// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/store"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

type localStateStore struct {
	entries store.LocalEntryRepository
	logger  *logger.Logger
}

// NewLocalStateStore returns a [LocalStateStore] over the device-local entry
// table.
func NewLocalStateStore(entries store.LocalEntryRepository, logger *logger.Logger) LocalStateStore {
	return &localStateStore{entries: entries, logger: logger}
}

func (s *localStateStore) GetAll(ctx context.Context) (models.Bundle, error) {
	raw, err := s.entries.GetMany(ctx, models.SyncedKeys)
	if err != nil {
		return nil, fmt.Errorf("%w: read local entries: %w", ErrLocalStore, err)
	}

	bundle := make(models.Bundle, len(raw))
	for key, value := range raw {
		bundle[key] = asJSON(value)
	}
	return bundle, nil
}

func (s *localStateStore) ApplyAll(ctx context.Context, bundle models.Bundle) (int, error) {
	entries := make(map[string]string, len(bundle))
	for key, value := range bundle {
		if !models.IsSyncedKey(key) {
			s.logger.Debug().Str("key", key).Msg("ignoring key outside the sync allow-list")
			continue
		}
		entries[key] = storedText(value)
	}

	if err := s.entries.PutMany(ctx, entries); err != nil {
		return 0, fmt.Errorf("%w: write local entries: %w", ErrLocalStore, err)
	}
	return len(entries), nil
}

// asJSON returns stored text verbatim when it is a JSON document and as a
// JSON string otherwise.
func asJSON(value string) json.RawMessage {
	if json.Valid([]byte(value)) {
		return json.RawMessage(value)
	}
	quoted, _ := json.Marshal(value)
	return quoted
}

// storedText is the inverse of asJSON: JSON strings are stored unquoted and
// every other value keeps its JSON text.
func storedText(value json.RawMessage) string {
	if value == nil {
		return "null"
	}
	var text string
	if err := json.Unmarshal(value, &text); err == nil {
		return text
	}
	return string(value)
}
