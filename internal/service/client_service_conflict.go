// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/adapter"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

type conflictDetector struct {
	tracker SyncStatusTracker
	session SessionIdentity
	adapter adapter.CloudAdapter

	logger *logger.Logger
}

// NewConflictDetector returns a [ConflictDetector] based on session id
// comparison. It cannot tell a genuinely newer writer from a wiped device
// that regenerated its session id.
func NewConflictDetector(tracker SyncStatusTracker, session SessionIdentity, cloud adapter.CloudAdapter, logger *logger.Logger) ConflictDetector {
	return &conflictDetector{
		tracker: tracker,
		session: session,
		adapter: cloud,
		logger:  logger,
	}
}

func (d *conflictDetector) CheckCrossDevice(ctx context.Context, userID string) models.CrossDeviceCheck {
	log := d.logger.ForUser(userID)

	if !d.tracker.Status(ctx).IsSynced {
		return models.CrossDeviceCheck{Reason: models.ReasonNeverSynced}
	}

	resp, err := d.adapter.Fetch(ctx, userID)
	if err != nil {
		err = mapAdapterError(err)
		log.Warn().Err(err).Str("func", "conflictDetector.CheckCrossDevice").Msg("cross-device check failed")
		return models.CrossDeviceCheck{Reason: models.ReasonCheckFailed, Err: err}
	}
	if !resp.HasCloudData {
		return models.CrossDeviceCheck{Reason: models.ReasonNoRemoteData}
	}

	check := models.CrossDeviceCheck{Reason: models.ReasonSameSession, RemoteUpdatedAt: resp.LastSynced}
	if resp.SessionID == nil || *resp.SessionID == "" {
		return check
	}
	check.RemoteSessionID = *resp.SessionID

	local, err := d.session.GetOrCreateSessionID(ctx)
	if err != nil {
		log.Err(err).Str("func", "conflictDetector.CheckCrossDevice").Msg("failed to resolve session id")
		return models.CrossDeviceCheck{Reason: models.ReasonCheckFailed, Err: err}
	}

	if check.RemoteSessionID != local {
		check.NeedsSync = true
		check.Reason = models.ReasonDifferentSession
		log.Info().
			Str("local_session", local).
			Str("remote_session", check.RemoteSessionID).
			Msg("cloud record was written by another device")
	}
	return check
}
