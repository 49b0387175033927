// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

// firestoreRecord is the document layout of a cloud record. Entry values are
// kept as JSON text so that arbitrary payloads survive Firestore's type
// system unchanged.
type firestoreRecord struct {
	Data      map[string]string `firestore:"data"`
	SessionID string            `firestore:"sessionId"`
	UpdatedAt time.Time         `firestore:"updatedAt"`
}

type firestoreCloudRecordRepository struct {
	client     *firestore.Client
	collection string
	logger     *logger.Logger
}

// NewFirestoreCloudRecordRepository returns a [CloudRecordRepository] that
// keeps one document per user id in collection.
func NewFirestoreCloudRecordRepository(client *firestore.Client, collection string, logger *logger.Logger) CloudRecordRepository {
	return &firestoreCloudRecordRepository{
		client:     client,
		collection: collection,
		logger:     logger,
	}
}

func (r *firestoreCloudRecordRepository) Upsert(ctx context.Context, record models.CloudRecord) error {
	doc := toFirestoreRecord(record)

	if _, err := r.client.Collection(r.collection).Doc(record.UserID).Set(ctx, doc); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "firestoreCloudRecordRepository.Upsert").
			Str("user_id", record.UserID).
			Msg("failed to write cloud record document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *firestoreCloudRecordRepository) Get(ctx context.Context, userID string) (models.CloudRecord, error) {
	log := logger.FromContext(ctx)

	snap, err := r.client.Collection(r.collection).Doc(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return models.CloudRecord{}, ErrCloudRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "firestoreCloudRecordRepository.Get").
			Str("user_id", userID).
			Msg("failed to read cloud record document")
		return models.CloudRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var doc firestoreRecord
	if err := snap.DataTo(&doc); err != nil {
		return models.CloudRecord{}, fmt.Errorf("%w: %w", ErrCorruptedRecord, err)
	}

	return fromFirestoreRecord(userID, doc)
}

func toFirestoreRecord(record models.CloudRecord) firestoreRecord {
	data := make(map[string]string, len(record.Data))
	for k, v := range record.Data {
		data[k] = string(v)
	}
	return firestoreRecord{
		Data:      data,
		SessionID: record.SessionID,
		UpdatedAt: record.UpdatedAt,
	}
}

func fromFirestoreRecord(userID string, doc firestoreRecord) (models.CloudRecord, error) {
	data := make(models.Bundle, len(doc.Data))
	for k, v := range doc.Data {
		if !json.Valid([]byte(v)) {
			return models.CloudRecord{}, fmt.Errorf("%w: entry %q is not valid JSON", ErrCorruptedRecord, k)
		}
		data[k] = json.RawMessage(v)
	}
	return models.CloudRecord{
		UserID:    userID,
		Data:      data,
		SessionID: doc.SessionID,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}
