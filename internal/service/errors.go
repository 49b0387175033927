// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Sync core failure taxonomy. Background failures are logged and reported
// through [models.SyncResult]; they are never returned as panics.
var (
	// ErrTransportFailure wraps any network or server error during an upload,
	// download or preview.
	ErrTransportFailure = errors.New("transport failure")

	// ErrNoRemoteData is reported when a download finds no cloud record.
	ErrNoRemoteData = errors.New("no remote data")

	// ErrMalformedLocalStatus is logged when the persisted sync status cannot
	// be parsed; the tracker self-heals to the unset default.
	ErrMalformedLocalStatus = errors.New("malformed local sync status")

	// ErrLocalStore wraps failures of the device-local store.
	ErrLocalStore = errors.New("local store failure")

	// ErrSchedulerStopped is reported by scheduler calls made before Start or
	// after Stop.
	ErrSchedulerStopped = errors.New("sync scheduler is stopped")

	// ErrUnknownSyncDirection is returned for a manual sync direction other
	// than local or cloud.
	ErrUnknownSyncDirection = errors.New("unknown sync direction")
)

// Cloud endpoint errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpiredOrInvalid               = errors.New("token is expired or invalid")
	ErrUnauthorizedAccessToDifferentUserData = errors.New("unauthorized access to different user data")

	ErrValidationNoUserID      = errors.New("no user ID was given")
	ErrValidationNoSessionID   = errors.New("no session ID was given")
	ErrValidationNoData        = errors.New("no data was given")
	ErrValidationKeyNotAllowed = errors.New("data key is not on the sync allow-list")
	ErrHashMismatch            = errors.New("hash mismatch")
)
