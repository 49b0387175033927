// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/store"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

type cloudRecordService struct {
	records store.CloudRecordRepository
	logger  *logger.Logger

	now func() time.Time
}

// NewCloudRecordService returns a last-writer-wins [CloudRecordService]: each
// Save replaces the whole record, nothing is merged.
func NewCloudRecordService(records store.CloudRecordRepository, logger *logger.Logger) CloudRecordService {
	return &cloudRecordService{
		records: records,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *cloudRecordService) Save(ctx context.Context, req models.UploadRequest) (models.CloudRecord, error) {
	log := logger.FromContext(ctx)

	record := models.CloudRecord{
		UserID:    req.UserID,
		Data:      req.Data,
		SessionID: req.SessionID,
		UpdatedAt: s.now(),
	}
	if record.Data == nil {
		record.Data = models.Bundle{}
	}

	if err := s.records.Upsert(ctx, record); err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("saving cloud record failed")
		return models.CloudRecord{}, fmt.Errorf("saving cloud record failed: %w", err)
	}

	log.Info().
		Str("user_id", req.UserID).
		Str("session_id", req.SessionID).
		Int("keys", len(record.Data)).
		Msg("cloud record replaced")
	return record, nil
}

func (s *cloudRecordService) Load(ctx context.Context, req models.DownloadRequest) (models.DownloadResponse, error) {
	record, err := s.records.Get(ctx, req.UserID)
	if errors.Is(err, store.ErrCloudRecordNotFound) {
		return models.DownloadResponse{}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", req.UserID).Msg("loading cloud record failed")
		return models.DownloadResponse{}, fmt.Errorf("loading cloud record failed: %w", err)
	}

	return models.NewDownloadResponse(record), nil
}
