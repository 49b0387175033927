// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

// LocalStateStore reads and writes the allow-listed local entries as one
// bundle. Keys outside [models.SyncedKeys] are never read or written.
type LocalStateStore interface {
	// GetAll returns every allow-listed entry present on the device. Stored
	// text that is not valid JSON is returned as a JSON string.
	GetAll(ctx context.Context) (models.Bundle, error)

	// ApplyAll overwrites every allow-listed entry of bundle unconditionally
	// and ignores the rest. JSON string values are stored unquoted, others as
	// their JSON text. It returns the number of entries written.
	ApplyAll(ctx context.Context, bundle models.Bundle) (int, error)
}

// SessionIdentity owns the per-device session id.
type SessionIdentity interface {
	// GetOrCreateSessionID returns the persisted session id, creating and
	// persisting one on first use.
	GetOrCreateSessionID(ctx context.Context) (string, error)
}

// SyncStatusTracker persists whether, when and for whom this device last
// completed a reconciliation.
type SyncStatusTracker interface {
	// Status returns the persisted status. Missing or corrupt data yields the
	// unset default.
	Status(ctx context.Context) models.SyncStatus

	// MarkSynced records a completed reconciliation for userID at the current
	// time.
	MarkSynced(ctx context.Context, userID string) error

	// Clear erases the persisted status.
	Clear(ctx context.Context) error
}

// CloudSyncClient moves whole bundles between the device and the user's cloud
// record. Every call is one round trip without retries; failures come back as
// results, never as panics.
type CloudSyncClient interface {
	// Upload sends the local bundle and session id. On success the device is
	// marked synced for userID. On failure nothing local changes.
	Upload(ctx context.Context, userID string) models.SyncResult

	// Download applies the cloud record to the device and marks it synced.
	// A missing record is reported with [models.FailureNoRemoteData].
	Download(ctx context.Context, userID string) models.SyncResult

	// FetchPreview reads the cloud record without touching local state.
	FetchPreview(ctx context.Context, userID string) (models.CloudPreview, models.SyncResult)
}

// ConflictDetector flags a cloud record last written by another device.
type ConflictDetector interface {
	// CheckCrossDevice compares the local session id with the session id of
	// the cloud record. A device that never synced is never reported as
	// behind and makes no network call.
	CheckCrossDevice(ctx context.Context, userID string) models.CrossDeviceCheck
}

// SyncScheduler decides when the CloudSyncClient runs for one signed-in user.
type SyncScheduler interface {
	// Start begins scheduling for userID, replacing any previous schedule.
	Start(ctx context.Context, userID string)

	// Stop cancels the periodic timer and any pending debounced upload
	// without flushing it, then waits for an in-flight round trip.
	Stop()

	// NotifyMutation reports a local change. It (re)arms the debounce timer.
	NotifyMutation()

	// ManualSync runs an upload (local) or download (cloud) immediately,
	// cancelling a pending debounce.
	ManualSync(ctx context.Context, direction models.SyncDirection) models.SyncResult

	// FlushPending runs a pending debounced upload now. The boolean is false
	// when nothing was pending.
	FlushPending(ctx context.Context) (models.SyncResult, bool)

	// State returns the current scheduler state.
	State() models.SchedulerState
}
