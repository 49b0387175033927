// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CloudRecord is the single remote snapshot kept per user.
// Every successful upload replaces it as a whole.
type CloudRecord struct {
	UserID    string    `json:"userId"`
	Data      Bundle    `json:"data"`
	SessionID string    `json:"sessionId"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UploadRequest is the write side of the remote sync contract.
type UploadRequest struct {
	UserID    string `json:"userId"`
	Data      Bundle `json:"data"`
	SessionID string `json:"sessionId"`

	// Hash is the hex HMAC-SHA256 of the JSON encoded Data. Optional.
	Hash string `json:"hash,omitempty"`
}

// UploadResponse acknowledges a stored upload.
type UploadResponse struct {
	Success   bool      `json:"success"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DownloadRequest is the read side of the remote sync contract.
type DownloadRequest struct {
	UserID string `json:"userId"`
}

// DownloadResponse describes the remote record of a user.
// When HasCloudData is false every other field is null.
type DownloadResponse struct {
	Data         Bundle     `json:"data"`
	LastSynced   *time.Time `json:"lastSynced"`
	HasCloudData bool       `json:"hasCloudData"`
	SessionID    *string    `json:"sessionId"`
}

// NewDownloadResponse builds the response for a stored record.
func NewDownloadResponse(rec CloudRecord) DownloadResponse {
	updatedAt := rec.UpdatedAt
	resp := DownloadResponse{
		Data:         rec.Data,
		LastSynced:   &updatedAt,
		HasCloudData: true,
	}
	if rec.SessionID != "" {
		sessionID := rec.SessionID
		resp.SessionID = &sessionID
	}
	return resp
}

// Exists reports whether the response carries a usable record.
func (r DownloadResponse) Exists() bool {
	return r.HasCloudData && r.Data != nil
}

// CloudPreview is a read-only look at the remote record used to let the user
// compare local and cloud data before choosing a direction.
type CloudPreview struct {
	Data      Bundle     `json:"data"`
	UpdatedAt *time.Time `json:"updatedAt"`
	Exists    bool       `json:"exists"`
}
