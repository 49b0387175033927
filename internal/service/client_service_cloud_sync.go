// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/adapter"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

type cloudSyncClient struct {
	local   LocalStateStore
	session SessionIdentity
	tracker SyncStatusTracker
	adapter adapter.CloudAdapter

	logger *logger.Logger
}

// NewCloudSyncClient wires a [CloudSyncClient] from the local components and
// the cloud adapter.
func NewCloudSyncClient(
	local LocalStateStore,
	session SessionIdentity,
	tracker SyncStatusTracker,
	cloud adapter.CloudAdapter,
	logger *logger.Logger,
) CloudSyncClient {
	return &cloudSyncClient{
		local:   local,
		session: session,
		tracker: tracker,
		adapter: cloud,
		logger:  logger,
	}
}

func (c *cloudSyncClient) Upload(ctx context.Context, userID string) models.SyncResult {
	log := c.logger.ForUser(userID)

	bundle, err := c.local.GetAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "cloudSyncClient.Upload").Msg("failed to read local bundle")
		return models.SyncFailed(models.SyncOpUpload, models.FailureLocalStore, err)
	}

	sessionID, err := c.session.GetOrCreateSessionID(ctx)
	if err != nil {
		log.Err(err).Str("func", "cloudSyncClient.Upload").Msg("failed to resolve session id")
		return models.SyncFailed(models.SyncOpUpload, models.FailureLocalStore, err)
	}

	req := models.UploadRequest{UserID: userID, Data: bundle, SessionID: sessionID}
	if _, err = c.adapter.Upload(ctx, req); err != nil {
		err = mapAdapterError(err)
		log.Warn().Err(err).Str("func", "cloudSyncClient.Upload").Msg("upload failed")
		return models.SyncFailed(models.SyncOpUpload, models.FailureTransport, err)
	}

	if err = c.tracker.MarkSynced(ctx, userID); err != nil {
		log.Err(err).Str("func", "cloudSyncClient.Upload").Msg("uploaded but failed to mark synced")
		return models.SyncFailed(models.SyncOpUpload, models.FailureLocalStore, err)
	}

	log.Debug().Int("keys", len(bundle)).Int("bytes", bundle.Size()).Msg("upload complete")
	return models.SyncSucceeded(models.SyncOpUpload)
}

func (c *cloudSyncClient) Download(ctx context.Context, userID string) models.SyncResult {
	log := c.logger.ForUser(userID)

	resp, err := c.adapter.Fetch(ctx, userID)
	if err != nil {
		err = mapAdapterError(err)
		log.Warn().Err(err).Str("func", "cloudSyncClient.Download").Msg("download failed")
		return models.SyncFailed(models.SyncOpDownload, models.FailureTransport, err)
	}
	if !resp.Exists() {
		log.Info().Msg("no cloud record to download")
		return models.SyncFailed(models.SyncOpDownload, models.FailureNoRemoteData, ErrNoRemoteData)
	}

	applied, err := c.local.ApplyAll(ctx, resp.Data)
	if err != nil {
		log.Err(err).Str("func", "cloudSyncClient.Download").Msg("failed to apply cloud bundle")
		return models.SyncFailed(models.SyncOpDownload, models.FailureLocalStore, err)
	}

	if err = c.tracker.MarkSynced(ctx, userID); err != nil {
		log.Err(err).Str("func", "cloudSyncClient.Download").Msg("applied but failed to mark synced")
		return models.SyncFailed(models.SyncOpDownload, models.FailureLocalStore, err)
	}

	log.Debug().Int("applied", applied).Msg("download complete")
	result := models.SyncSucceeded(models.SyncOpDownload)
	result.Applied = applied
	return result
}

func (c *cloudSyncClient) FetchPreview(ctx context.Context, userID string) (models.CloudPreview, models.SyncResult) {
	resp, err := c.adapter.Fetch(ctx, userID)
	if err != nil {
		err = mapAdapterError(err)
		c.logger.ForUser(userID).Warn().Err(err).Str("func", "cloudSyncClient.FetchPreview").Msg("preview failed")
		return models.CloudPreview{}, models.SyncFailed(models.SyncOpPreview, models.FailureTransport, err)
	}

	if !resp.Exists() {
		return models.CloudPreview{}, models.SyncSucceeded(models.SyncOpPreview)
	}

	return models.CloudPreview{
		Data:      resp.Data,
		UpdatedAt: resp.LastSynced,
		Exists:    true,
	}, models.SyncSucceeded(models.SyncOpPreview)
}
