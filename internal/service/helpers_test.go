// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/adapter"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/config"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/store"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

// newTestStorages opens a fresh SQLite file in a temp dir.
func newTestStorages(t *testing.T) *store.ClientStorages {
	t.Helper()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "local.db")}}

	s, err := store.NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// device is one client install: its own SQLite file and sync core.
type device struct {
	storages *store.ClientStorages
	local    LocalStateStore
	session  SessionIdentity
	tracker  SyncStatusTracker
	client   CloudSyncClient
	detector ConflictDetector
}

func newDevice(t *testing.T, cloud adapter.CloudAdapter) *device {
	t.Helper()
	storages := newTestStorages(t)
	svcs := NewClientServices(storages, cloud, config.ClientWorkers{}, logger.Nop())
	t.Cleanup(svcs.Scheduler.Stop)

	return &device{
		storages: storages,
		local:    svcs.LocalState,
		session:  svcs.Session,
		tracker:  svcs.StatusTracker,
		client:   svcs.SyncClient,
		detector: svcs.ConflictDetector,
	}
}

// seedSession pins the device session id before first use.
func (d *device) seedSession(t *testing.T, id string) {
	t.Helper()
	require.NoError(t, d.storages.LocalEntries.Put(context.Background(), models.KeySessionID, id))
}

// put writes raw text under key as the game would.
func (d *device) put(t *testing.T, key, value string) {
	t.Helper()
	require.NoError(t, d.storages.LocalEntries.Put(context.Background(), key, value))
}

// snapshot returns every row the device holds, including sync-owned keys.
func (d *device) snapshot(t *testing.T) map[string]string {
	t.Helper()
	keys := append([]string{models.KeySyncStatus, models.KeySessionID, "authToken"}, models.SyncedKeys...)
	rows, err := d.storages.LocalEntries.GetMany(context.Background(), keys)
	require.NoError(t, err)
	return rows
}

// fakeCloud is an in-memory last-writer-wins endpoint.
type fakeCloud struct {
	mu      sync.Mutex
	records map[string]models.CloudRecord

	uploads int
	fetches int

	failUpload error
	failFetch  error

	now func() time.Time
}

func newFakeCloud() *fakeCloud {
	return &fakeCloud{
		records: make(map[string]models.CloudRecord),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

var _ adapter.CloudAdapter = (*fakeCloud)(nil)

func (c *fakeCloud) SetToken(string) {}

func (c *fakeCloud) Token() string { return "" }

func (c *fakeCloud) Upload(_ context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uploads++
	if c.failUpload != nil {
		return models.UploadResponse{}, c.failUpload
	}

	// the wire round trip normalises values
	raw, err := json.Marshal(req.Data)
	if err != nil {
		return models.UploadResponse{}, err
	}
	var data models.Bundle
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.UploadResponse{}, err
	}

	rec := models.CloudRecord{UserID: req.UserID, Data: data, SessionID: req.SessionID, UpdatedAt: c.now()}
	c.records[req.UserID] = rec
	return models.UploadResponse{Success: true, UpdatedAt: rec.UpdatedAt}, nil
}

func (c *fakeCloud) Fetch(_ context.Context, userID string) (models.DownloadResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetches++
	if c.failFetch != nil {
		return models.DownloadResponse{}, c.failFetch
	}

	rec, ok := c.records[userID]
	if !ok {
		return models.DownloadResponse{}, nil
	}
	return models.NewDownloadResponse(rec), nil
}

func (c *fakeCloud) record(userID string) (models.CloudRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.records[userID]
	return rec, ok
}

func (c *fakeCloud) counts() (uploads, fetches int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uploads, c.fetches
}
