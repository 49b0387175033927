// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/adapter"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/config"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/service"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/store"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/tui"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/utils"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/watcher"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/workers"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

const defaultFlushTimeout = 10 * time.Second

type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	ui       Reconciler
	userID   string

	logger *logger.Logger
}

// NewApp opens the local store and wires the sync core for the resolved user.
func NewApp(ctx context.Context, cfg *config.ClientConfig, ui Reconciler, logger *logger.Logger) (*App, error) {
	userID, err := ResolveUserID(cfg.App, cfg.Adapter)
	if err != nil {
		return nil, err
	}

	cloud, err := adapter.NewHTTPCloudAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("create cloud adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	return newApp(cfg, storages, cloud, ui, userID, logger), nil
}

func newApp(cfg *config.ClientConfig, storages *store.ClientStorages, cloud adapter.CloudAdapter, ui Reconciler, userID string, logger *logger.Logger) *App {
	log := logger.ForUser(userID)
	return &App{
		cfg:      cfg,
		storages: storages,
		services: service.NewClientServices(storages, cloud, cfg.Workers, log),
		ui:       ui,
		userID:   userID,
		logger:   log,
	}
}

// ResolveUserID prefers the explicit user id and falls back to the subject
// of the bearer token.
func ResolveUserID(app config.ClientApp, adapterCfg config.ClientAdapter) (string, error) {
	if app.UserID != "" {
		return app.UserID, nil
	}
	if adapterCfg.Token == "" {
		return "", ErrNoUserID
	}

	sub, err := utils.SubjectFromJWT(adapterCfg.Token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoUserID, err)
	}
	return sub, nil
}

func (a *App) UserID() string { return a.userID }

func (a *App) Close() error {
	return a.storages.Close()
}

// Run reconciles once, then schedules uploads for local mutations until ctx
// is cancelled. prefer answers the reconciliation question without the
// dialog; an empty prefer opens it.
func (a *App) Run(ctx context.Context, prefer string) error {
	check := a.services.ConflictDetector.CheckCrossDevice(ctx, a.userID)
	a.logger.Info().
		Bool("needs_sync", check.NeedsSync).
		Str("reason", string(check.Reason)).
		Msg("cross-device check")

	choice := tui.ChoiceLater
	if a.needsDecision(ctx, check) {
		var err error
		if choice, err = a.decide(ctx, check, prefer); err != nil {
			return err
		}
	}

	scheduler := a.services.Scheduler
	scheduler.Start(ctx, a.userID)

	if dir, ok := choice.Direction(); ok {
		result := scheduler.ManualSync(ctx, dir)
		a.logResult(result)
	}

	ws := workers.NewWorkers(workers.WorkerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	}))
	if a.cfg.Workers.WatchLocalStore {
		ws.Add(watcher.NewMutationWatcher(a.storages.Path, a.services.LocalState, scheduler, a.logger))
	}

	runErr := ws.Run(ctx)

	if a.cfg.Workers.FlushOnStop {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.flushTimeout())
		if result, pending := scheduler.FlushPending(flushCtx); pending {
			a.logResult(result)
		}
		cancel()
	}
	scheduler.Stop()

	return runErr
}

// needsDecision reports whether startup has to ask which side wins: the
// cloud was last written by another device, or this device never synced and
// the cloud already holds a save.
func (a *App) needsDecision(ctx context.Context, check models.CrossDeviceCheck) bool {
	if check.NeedsSync {
		return true
	}
	if check.Reason != models.ReasonNeverSynced {
		return false
	}

	preview, result := a.services.SyncClient.FetchPreview(ctx, a.userID)
	if !result.OK {
		a.logger.Warn().Err(result.Err).Str("func", "App.needsDecision").Msg("cloud preview failed")
		return false
	}
	return preview.Exists
}

func (a *App) decide(ctx context.Context, check models.CrossDeviceCheck, prefer string) (tui.ReconcileChoice, error) {
	if prefer != "" {
		choice, ok := tui.ParseChoice(prefer)
		if !ok {
			return tui.ChoiceLater, fmt.Errorf("%w: %q", ErrUnknownPreference, prefer)
		}
		return choice, nil
	}

	summary, err := a.Summary(ctx, check)
	if err != nil {
		return tui.ChoiceLater, err
	}
	return a.ui.Reconcile(ctx, summary)
}

// Summary collects what the reconciliation dialog shows. A failed cloud
// preview is reported inside the summary.
func (a *App) Summary(ctx context.Context, check models.CrossDeviceCheck) (tui.Summary, error) {
	local, err := a.services.LocalState.GetAll(ctx)
	if err != nil {
		return tui.Summary{}, fmt.Errorf("read local state: %w", err)
	}

	sessionID, err := a.services.Session.GetOrCreateSessionID(ctx)
	if err != nil {
		return tui.Summary{}, fmt.Errorf("read session id: %w", err)
	}

	preview, result := a.services.SyncClient.FetchPreview(ctx, a.userID)

	return tui.Summary{
		UserID:     a.userID,
		SessionID:  sessionID,
		Local:      local,
		Cloud:      preview,
		Check:      check,
		PreviewErr: result.Err,
	}, nil
}

// Reconcile runs the cross-device check, asks for a decision and applies it
// without starting the scheduler.
func (a *App) Reconcile(ctx context.Context, prefer string) (tui.ReconcileChoice, models.SyncResult, error) {
	check := a.services.ConflictDetector.CheckCrossDevice(ctx, a.userID)

	choice, err := a.decide(ctx, check, prefer)
	if err != nil {
		return tui.ChoiceLater, models.SyncResult{}, err
	}

	switch choice {
	case tui.ChoiceLocal:
		return choice, a.Push(ctx), nil
	case tui.ChoiceCloud:
		return choice, a.Pull(ctx), nil
	}
	return choice, models.SyncResult{}, nil
}

func (a *App) Push(ctx context.Context) models.SyncResult {
	result := a.services.SyncClient.Upload(ctx, a.userID)
	a.logResult(result)
	return result
}

func (a *App) Pull(ctx context.Context) models.SyncResult {
	result := a.services.SyncClient.Download(ctx, a.userID)
	a.logResult(result)
	return result
}

func (a *App) Check(ctx context.Context) models.CrossDeviceCheck {
	return a.services.ConflictDetector.CheckCrossDevice(ctx, a.userID)
}

// Status returns the persisted sync status and the device session id.
func (a *App) Status(ctx context.Context) (models.SyncStatus, string, error) {
	sessionID, err := a.services.Session.GetOrCreateSessionID(ctx)
	if err != nil {
		return models.SyncStatus{}, "", err
	}
	return a.services.StatusTracker.Status(ctx), sessionID, nil
}

// Reset clears the sync status so the next start asks again before any
// upload.
func (a *App) Reset(ctx context.Context) error {
	return a.services.StatusTracker.Clear(ctx)
}

// Set writes one allow-listed local entry.
func (a *App) Set(ctx context.Context, key string, value []byte) error {
	if !models.IsSyncedKey(key) {
		return fmt.Errorf("%w: %s", ErrKeyNotSynced, key)
	}
	if !json.Valid(value) {
		return ErrInvalidValue
	}

	_, err := a.services.LocalState.ApplyAll(ctx, models.Bundle{key: json.RawMessage(value)})
	return err
}

func (a *App) flushTimeout() time.Duration {
	if a.cfg.Adapter.RequestTimeout > 0 {
		return a.cfg.Adapter.RequestTimeout
	}
	return defaultFlushTimeout
}

func (a *App) logResult(result models.SyncResult) {
	if result.OK {
		a.logger.Info().Str("op", string(result.Op)).Int("applied", result.Applied).Msg("sync finished")
		return
	}
	event := a.logger.Warn()
	if errors.Is(result.Err, context.Canceled) {
		event = a.logger.Debug()
	}
	event.Err(result.Err).Str("op", string(result.Op)).Str("reason", string(result.Reason)).Msg("sync failed")
}
