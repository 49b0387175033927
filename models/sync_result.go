// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncOp names a sync round trip.
type SyncOp string

const (
	SyncOpUpload   SyncOp = "upload"
	SyncOpDownload SyncOp = "download"
	SyncOpPreview  SyncOp = "preview"
)

// FailureReason classifies a failed sync round trip.
type FailureReason string

const (
	FailureNone             FailureReason = ""
	FailureTransport        FailureReason = "transport_failure"
	FailureNoRemoteData     FailureReason = "no_remote_data"
	FailureLocalStore       FailureReason = "local_store_failure"
	FailureSchedulerStopped FailureReason = "scheduler_stopped"
)

// SyncResult is the outcome of one sync round trip. Failures are values,
// callers never have to recover from a panic or unwrap a thrown error.
type SyncResult struct {
	Op     SyncOp
	OK     bool
	Reason FailureReason
	Err    error

	// Applied is the number of entries written locally by a download.
	Applied int
	At      time.Time
}

// SyncSucceeded builds a successful result.
func SyncSucceeded(op SyncOp) SyncResult {
	return SyncResult{Op: op, OK: true, At: time.Now().UTC()}
}

// SyncFailed builds a failed result.
func SyncFailed(op SyncOp, reason FailureReason, err error) SyncResult {
	return SyncResult{Op: op, Reason: reason, Err: err, At: time.Now().UTC()}
}

// SyncDirection is the user's choice in the reconciliation dialog.
type SyncDirection string

const (
	// SyncDirectionLocal keeps the device data and uploads it.
	SyncDirectionLocal SyncDirection = "local"
	// SyncDirectionCloud replaces the device data with the cloud record.
	SyncDirectionCloud SyncDirection = "cloud"
)

// SchedulerState is the per-user sync state of this device.
type SchedulerState string

const (
	StateUnsynced    SchedulerState = "unsynced"
	StateSynced      SchedulerState = "synced"
	StateSyncPending SchedulerState = "sync_pending"
)

// ConflictReason explains a cross-device check outcome.
type ConflictReason string

const (
	ReasonNeverSynced      ConflictReason = "never_synced"
	ReasonNoRemoteData     ConflictReason = "no_remote_data"
	ReasonSameSession      ConflictReason = "same_session"
	ReasonDifferentSession ConflictReason = "different_session"
	ReasonCheckFailed      ConflictReason = "check_failed"
)

// CrossDeviceCheck is the result of comparing the local session id with the
// session id of the last remote writer.
type CrossDeviceCheck struct {
	NeedsSync       bool
	Reason          ConflictReason
	RemoteUpdatedAt *time.Time
	RemoteSessionID string
	Err             error
}
