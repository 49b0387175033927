// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/store"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

type sessionIdentity struct {
	entries store.LocalEntryRepository
	logger  *logger.Logger

	mu     sync.Mutex
	cached string
}

// NewSessionIdentity returns a [SessionIdentity] persisted under
// [models.KeySessionID].
func NewSessionIdentity(entries store.LocalEntryRepository, logger *logger.Logger) SessionIdentity {
	return &sessionIdentity{entries: entries, logger: logger}
}

func (s *sessionIdentity) GetOrCreateSessionID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != "" {
		return s.cached, nil
	}

	stored, found, err := s.entries.Get(ctx, models.KeySessionID)
	if err != nil {
		return "", fmt.Errorf("%w: read session id: %w", ErrLocalStore, err)
	}
	if found && strings.TrimSpace(stored) != "" {
		s.cached = stored
		return stored, nil
	}

	id := newSessionID(time.Now())
	if err := s.entries.Put(ctx, models.KeySessionID, id); err != nil {
		return "", fmt.Errorf("%w: persist session id: %w", ErrLocalStore, err)
	}
	s.logger.Info().Str("session_id", id).Msg("created device session id")

	s.cached = id
	return id, nil
}

// newSessionID builds "<base36 unix millis>-<12 hex chars>".
func newSessionID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return strconv.FormatInt(now.UnixMilli(), 36) + "-" + suffix
}
