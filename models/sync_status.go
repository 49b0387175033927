// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus records whether, when and for whom this device last completed a
// reconciliation with the cloud.
//
// IsSynced == true implies that both LastSyncedAt and UserID are set.
// The zero value is the unset default.
type SyncStatus struct {
	IsSynced     bool       `json:"isSynced"`
	LastSyncedAt *time.Time `json:"lastSyncedAt"`
	UserID       *string    `json:"userId"`
}

// Valid reports whether s respects the IsSynced invariant.
func (s SyncStatus) Valid() bool {
	if !s.IsSynced {
		return true
	}
	return s.LastSyncedAt != nil && s.UserID != nil && *s.UserID != ""
}

// SyncedFor reports whether the device is synced for the given user.
func (s SyncStatus) SyncedFor(userID string) bool {
	return s.IsSynced && s.UserID != nil && *s.UserID == userID
}
