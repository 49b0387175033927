// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/validators"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

type CloudRecordValidationService struct {
	inner     CloudRecordService
	validator validators.Validator
}

func NewCloudRecordValidationService() CloudRecordServiceWrapper {
	return &CloudRecordValidationService{
		validator: validators.NewSyncRequestValidator(),
	}
}

func (v *CloudRecordValidationService) Wrap(inner CloudRecordService) CloudRecordService {
	v.inner = inner
	return v
}

func (v *CloudRecordValidationService) Save(ctx context.Context, req models.UploadRequest) (models.CloudRecord, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.CloudRecord{}, fmt.Errorf("error during upload validation: %w", mapValidationError(err))
	}

	return v.inner.Save(ctx, req)
}

func (v *CloudRecordValidationService) Load(ctx context.Context, req models.DownloadRequest) (models.DownloadResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.DownloadResponse{}, fmt.Errorf("error during download validation: %w", mapValidationError(err))
	}

	return v.inner.Load(ctx, req)
}

// mapValidationError attaches the service sentinel matching a validator
// error, keeping the original in the chain.
func mapValidationError(err error) error {
	var sentinel error
	switch {
	case errors.Is(err, validators.ErrInvalidUserID):
		sentinel = ErrValidationNoUserID
	case errors.Is(err, validators.ErrInvalidSessionID):
		sentinel = ErrValidationNoSessionID
	case errors.Is(err, validators.ErrEmptyData):
		sentinel = ErrValidationNoData
	case errors.Is(err, validators.ErrKeyNotAllowed):
		sentinel = ErrValidationKeyNotAllowed
	default:
		sentinel = ErrInvalidDataProvided
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
