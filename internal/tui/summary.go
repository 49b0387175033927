// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

// Summary is what the dialog shows about both sides.
type Summary struct {
	UserID    string
	SessionID string

	Local models.Bundle
	Cloud models.CloudPreview
	Check models.CrossDeviceCheck

	// PreviewErr is set when the cloud preview could not be fetched.
	PreviewErr error
}

// KeyDiff classifies the allow-listed keys of both sides.
type KeyDiff struct {
	OnlyLocal []string
	OnlyCloud []string
	Differ    []string
	Same      int
}

// Diff compares local and cloud values key by key. Values are compared as
// compacted JSON, so formatting differences do not count.
func (s Summary) Diff() KeyDiff {
	var d KeyDiff
	for _, key := range s.Local.Keys() {
		cloud, ok := s.Cloud.Data[key]
		switch {
		case !ok:
			d.OnlyLocal = append(d.OnlyLocal, key)
		case equalJSON(s.Local[key], cloud):
			d.Same++
		default:
			d.Differ = append(d.Differ, key)
		}
	}
	for _, key := range s.Cloud.Data.Keys() {
		if _, ok := s.Local[key]; !ok {
			d.OnlyCloud = append(d.OnlyCloud, key)
		}
	}
	return d
}

// CloudAge is the time since the cloud record was written, zero when unknown.
func (s Summary) CloudAge(now time.Time) time.Duration {
	if s.Cloud.UpdatedAt == nil {
		return 0
	}
	return now.Sub(*s.Cloud.UpdatedAt).Truncate(time.Second)
}

func equalJSON(a, b json.RawMessage) bool {
	var ca, cb bytes.Buffer
	if json.Compact(&ca, a) != nil || json.Compact(&cb, b) != nil {
		return bytes.Equal(a, b)
	}
	return bytes.Equal(ca.Bytes(), cb.Bytes())
}
