// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/mixel34p/Yo-kaidle-sub001/internal/adapter"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/config"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/store"
)

// ClientServices is the wired sync core of one device.
type ClientServices struct {
	LocalState       LocalStateStore
	Session          SessionIdentity
	StatusTracker    SyncStatusTracker
	SyncClient       CloudSyncClient
	ConflictDetector ConflictDetector
	Scheduler        SyncScheduler
}

func NewClientServices(storages *store.ClientStorages, cloud adapter.CloudAdapter, workers config.ClientWorkers, logger *logger.Logger) *ClientServices {
	local := NewLocalStateStore(storages.LocalEntries, logger)
	session := NewSessionIdentity(storages.LocalEntries, logger)
	tracker := NewSyncStatusTracker(storages.LocalEntries, logger)
	syncClient := NewCloudSyncClient(local, session, tracker, cloud, logger)

	return &ClientServices{
		LocalState:       local,
		Session:          session,
		StatusTracker:    tracker,
		SyncClient:       syncClient,
		ConflictDetector: NewConflictDetector(tracker, session, cloud, logger),
		Scheduler:        NewSyncScheduler(syncClient, tracker, workers, logger),
	}
}
