// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package watcher turns writes to the local SQLite file into sync scheduler
// mutation notifications.
//
// SQLite writes touch the database file and its journal, so file events alone
// cannot tell a game save from the sync client's own bookkeeping (syncStatus,
// sessionId). Each burst of events is therefore confirmed against a blake2b
// fingerprint of the allow-listed bundle; only a changed fingerprint notifies.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/crypto/blake2b"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

// defaultSettle coalesces the events of one SQLite transaction.
const defaultSettle = 150 * time.Millisecond

// BundleReader reads the allow-listed local entries.
type BundleReader interface {
	GetAll(ctx context.Context) (models.Bundle, error)
}

// Notifier receives local mutation notifications.
type Notifier interface {
	NotifyMutation()
}

// MutationWatcher watches the local database file. It implements
// [workers.Worker].
type MutationWatcher struct {
	path     string
	local    BundleReader
	notifier Notifier
	settle   time.Duration

	mu   sync.Mutex
	last [blake2b.Size256]byte
	seen bool

	logger *logger.Logger
}

func NewMutationWatcher(dbPath string, local BundleReader, notifier Notifier, logger *logger.Logger) *MutationWatcher {
	return &MutationWatcher{
		path:     dbPath,
		local:    local,
		notifier: notifier,
		settle:   defaultSettle,
		logger:   logger,
	}
}

// Run watches the database directory until ctx is done.
func (w *MutationWatcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err = fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	// baseline, so the first event compares against the state at startup
	if _, err = w.Check(ctx); err != nil {
		w.logger.Warn().Err(err).Str("func", "MutationWatcher.Run").Msg("initial fingerprint failed")
	}
	w.logger.Info().Str("path", w.path).Msg("watching local store")

	timer := time.NewTimer(w.settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				timer.Reset(w.settle)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Str("func", "MutationWatcher.Run").Msg("fsnotify error")

		case <-timer.C:
			if _, err := w.Check(ctx); err != nil && !errors.Is(err, context.Canceled) {
				w.logger.Warn().Err(err).Str("func", "MutationWatcher.Run").Msg("fingerprint failed")
			}
		}
	}
}

// Check fingerprints the local bundle and notifies when it differs from the
// previous fingerprint. The first call only records a baseline.
func (w *MutationWatcher) Check(ctx context.Context) (bool, error) {
	bundle, err := w.local.GetAll(ctx)
	if err != nil {
		return false, err
	}
	sum := Fingerprint(bundle)

	w.mu.Lock()
	changed := w.seen && sum != w.last
	w.last = sum
	w.seen = true
	w.mu.Unlock()

	if changed {
		w.logger.Debug().Int("keys", len(bundle)).Msg("local bundle changed")
		w.notifier.NotifyMutation()
	}
	return changed, nil
}

// relevant reports whether event touches the database file or one of its
// journal companions (-journal, -wal).
func (w *MutationWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	return strings.HasPrefix(filepath.Base(event.Name), filepath.Base(w.path))
}

// Fingerprint hashes the bundle in key order.
func Fingerprint(bundle models.Bundle) [blake2b.Size256]byte {
	h, _ := blake2b.New256(nil)
	for _, key := range bundle.Keys() {
		h.Write([]byte(key))
		h.Write([]byte{0})
		h.Write(bundle[key])
		h.Write([]byte{0})
	}

	var sum [blake2b.Size256]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
