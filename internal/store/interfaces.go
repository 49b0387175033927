// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence layer: the device-local SQLite entry
// table used by the sync client and the cloud record repositories (PostgreSQL
// or Firestore) used by the cloud endpoint.
package store

import (
	"context"

	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalEntryRepository is the device-local key/value table. Values are stored
// as text exactly as written.
type LocalEntryRepository interface {
	// Get returns the value stored under key. found is false when the key is
	// absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// GetMany returns the stored values of the given keys. Absent keys are
	// omitted from the result.
	GetMany(ctx context.Context, keys []string) (map[string]string, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error
	// PutMany stores all entries in one transaction.
	PutMany(ctx context.Context, entries map[string]string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// CloudRecordRepository stores one sync snapshot per user with
// last-writer-wins semantics.
type CloudRecordRepository interface {
	// Upsert replaces the user's record as a whole.
	Upsert(ctx context.Context, record models.CloudRecord) error
	// Get returns the user's record or ErrCloudRecordNotFound.
	Get(ctx context.Context, userID string) (models.CloudRecord, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
