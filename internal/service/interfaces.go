// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

// CloudRecordService is the cloud endpoint's view of the per-user records.
type CloudRecordService interface {
	// Save replaces the user's record with the uploaded snapshot and stamps
	// it with the current time.
	Save(ctx context.Context, req models.UploadRequest) (models.CloudRecord, error)

	// Load returns the user's record. A missing record is reported through
	// HasCloudData == false, not as an error.
	Load(ctx context.Context, req models.DownloadRequest) (models.DownloadResponse, error)
}

// AuthService verifies bearer tokens.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// CloudRecordServiceWrapper defines middleware composition for
// CloudRecordService, e.g. validation.
type CloudRecordServiceWrapper interface {
	Wrap(CloudRecordService) CloudRecordService
}
