// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/config"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

const (
	defaultDebounceWindow   = 3 * time.Second
	defaultPeriodicInterval = 5 * time.Minute
)

type syncScheduler struct {
	client  CloudSyncClient
	tracker SyncStatusTracker

	debounce time.Duration
	interval time.Duration

	logger *logger.Logger

	mu      sync.Mutex
	running bool
	userID  string
	state   models.SchedulerState
	ctx     context.Context
	cancel  context.CancelFunc

	// gen changes on every Start and Stop; timers and loops of an older
	// generation are no-ops.
	gen uint64

	timer   *time.Timer
	armed   uint64
	pending bool

	periodic bool
	wg       sync.WaitGroup

	// runMu serializes round trips.
	runMu sync.Mutex
}

// NewSyncScheduler creates an idle scheduler. Non-positive durations in cfg
// fall back to 3s (debounce) and 5m (periodic).
func NewSyncScheduler(client CloudSyncClient, tracker SyncStatusTracker, cfg config.ClientWorkers, logger *logger.Logger) SyncScheduler {
	s := &syncScheduler{
		client:   client,
		tracker:  tracker,
		debounce: cfg.DebounceWindow,
		interval: cfg.PeriodicInterval,
		logger:   logger,
		state:    models.StateUnsynced,
	}
	if s.debounce <= 0 {
		s.debounce = defaultDebounceWindow
	}
	if s.interval <= 0 {
		s.interval = defaultPeriodicInterval
	}
	return s
}

func (s *syncScheduler) Start(ctx context.Context, userID string) {
	s.Stop()

	status := s.tracker.Status(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.running = true
	s.userID = userID
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.state = models.StateUnsynced
	if status.SyncedFor(userID) {
		s.state = models.StateSynced
		s.startPeriodicLocked()
	}

	s.logger.ForUser(userID).Info().Str("state", string(s.state)).Msg("sync scheduler started")
}

func (s *syncScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.gen++
	s.cancelDebounceLocked()
	s.periodic = false
	cancel := s.cancel
	userID := s.userID
	s.mu.Unlock()

	cancel()
	s.wg.Wait()

	// wait for a round trip started by a timer or ManualSync
	s.runMu.Lock()
	s.runMu.Unlock() //nolint:staticcheck

	s.logger.ForUser(userID).Info().Msg("sync scheduler stopped")
}

func (s *syncScheduler) NotifyMutation() {
	s.mu.Lock()
	defer s.mu.Unlock()

	// a device that was never reconciled must not overwrite the cloud record
	if !s.running || s.state == models.StateUnsynced {
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.armed++
	s.pending = true
	s.state = models.StateSyncPending

	gen, armed := s.gen, s.armed
	s.timer = time.AfterFunc(s.debounce, func() {
		s.fireDebounce(gen, armed)
	})
}

func (s *syncScheduler) ManualSync(ctx context.Context, direction models.SyncDirection) models.SyncResult {
	var op models.SyncOp
	switch direction {
	case models.SyncDirectionLocal:
		op = models.SyncOpUpload
	case models.SyncDirectionCloud:
		op = models.SyncOpDownload
	default:
		return models.SyncFailed(models.SyncOpUpload, models.FailureNone, ErrUnknownSyncDirection)
	}

	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return models.SyncFailed(op, models.FailureSchedulerStopped, ErrSchedulerStopped)
	}
	s.cancelDebounceLocked()
	gen, userID := s.gen, s.userID
	s.mu.Unlock()

	s.runMu.Lock()
	defer s.runMu.Unlock()

	if !s.current(gen) {
		return models.SyncFailed(op, models.FailureSchedulerStopped, ErrSchedulerStopped)
	}

	var result models.SyncResult
	if op == models.SyncOpUpload {
		result = s.client.Upload(ctx, userID)
	} else {
		result = s.client.Download(ctx, userID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || !s.running {
		return result
	}
	switch {
	case result.OK:
		s.settleLocked()
		s.startPeriodicLocked()
	case s.state != models.StateUnsynced:
		s.settleLocked()
	}
	return result
}

func (s *syncScheduler) FlushPending(ctx context.Context) (models.SyncResult, bool) {
	s.mu.Lock()
	if !s.running || !s.pending {
		s.mu.Unlock()
		return models.SyncResult{}, false
	}
	s.cancelDebounceLocked()
	gen := s.gen
	s.mu.Unlock()

	return s.runUpload(ctx, gen), true
}

func (s *syncScheduler) State() models.SchedulerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *syncScheduler) fireDebounce(gen, armed uint64) {
	s.mu.Lock()
	if gen != s.gen || armed != s.armed || !s.running || !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.timer = nil
	ctx := s.ctx
	s.mu.Unlock()

	s.runUpload(ctx, gen)
}

// startPeriodicLocked starts the heartbeat loop once per generation. s.mu
// must be held.
func (s *syncScheduler) startPeriodicLocked() {
	if s.periodic {
		return
	}
	s.periodic = true

	ctx, gen, interval := s.ctx, s.gen, s.interval
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.runUpload(ctx, gen)
			}
		}
	}()
}

// runUpload performs one scheduled upload for generation gen.
func (s *syncScheduler) runUpload(ctx context.Context, gen uint64) models.SyncResult {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	s.mu.Lock()
	if gen != s.gen || !s.running {
		s.mu.Unlock()
		return models.SyncFailed(models.SyncOpUpload, models.FailureSchedulerStopped, ErrSchedulerStopped)
	}
	s.state = models.StateSyncPending
	userID := s.userID
	s.mu.Unlock()

	result := s.client.Upload(ctx, userID)
	if !result.OK {
		// background failures stay silent; the next trigger retries
		s.logger.ForUser(userID).Debug().
			Str("reason", string(result.Reason)).
			Msg("scheduled upload failed")
	}

	s.mu.Lock()
	if gen == s.gen && s.running {
		s.settleLocked()
	}
	s.mu.Unlock()

	return result
}

// settleLocked ends a round trip: Synced, or SyncPending when another
// debounced upload is already armed.
func (s *syncScheduler) settleLocked() {
	if s.pending {
		s.state = models.StateSyncPending
		return
	}
	s.state = models.StateSynced
}

func (s *syncScheduler) cancelDebounceLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.armed++
	s.pending = false
}

func (s *syncScheduler) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.gen && s.running
}
