// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"slices"
)

// Keys of the local entries that travel with a sync bundle.
//
// The list is closed: anything the game writes under another key stays on
// the device and is never uploaded or overwritten by a download.
const (
	KeyMedallium       = "medallium"
	KeyAchievements    = "achievements"
	KeyPoints          = "points"
	KeyEconomy         = "economy"
	KeyGameProgress    = "gameProgress"
	KeyDailyProgress   = "dailyProgress"
	KeyStreak          = "streak"
	KeyStats           = "stats"
	KeyHintState       = "hintState"
	KeyLastVersionSeen = "lastVersionSeen"
	KeyProfile         = "profile"
	KeyPreferences     = "preferences"
)

// Dedicated local keys owned by the sync core itself. They are never part of
// a [Bundle].
const (
	KeySyncStatus = "syncStatus"
	KeySessionID  = "sessionId"
)

// SyncedKeys is the allow-list of local keys that a sync bundle may carry.
var SyncedKeys = []string{
	KeyMedallium,
	KeyAchievements,
	KeyPoints,
	KeyEconomy,
	KeyGameProgress,
	KeyDailyProgress,
	KeyStreak,
	KeyStats,
	KeyHintState,
	KeyLastVersionSeen,
	KeyProfile,
	KeyPreferences,
}

// IsSyncedKey reports whether key is on the sync allow-list.
func IsSyncedKey(key string) bool {
	return slices.Contains(SyncedKeys, key)
}

// Bundle is a full snapshot of the allow-listed local entries, keyed by entry
// name. Values are JSON documents and are treated as opaque.
type Bundle map[string]json.RawMessage

// Keys returns the bundle keys in sorted order.
func (b Bundle) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Filter returns a copy of b without the keys that are not allow-listed.
func (b Bundle) Filter() Bundle {
	out := make(Bundle, len(b))
	for k, v := range b {
		if IsSyncedKey(k) {
			out[k] = v
		}
	}
	return out
}

// Size returns the total number of value bytes held by the bundle.
func (b Bundle) Size() int {
	n := 0
	for _, v := range b {
		n += len(v)
	}
	return n
}
