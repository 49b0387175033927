// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/config"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/service"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/store"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/utils"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

const (
	testIssuer  = "yokaidle-accounts"
	testSignKey = "handler-test-key"
	testHashKey = "handler-hash-key"

	testMaxBodyBytes = 64 << 10
)

// memoryRecords is an in-memory store.CloudRecordRepository.
type memoryRecords struct {
	mu      sync.Mutex
	records map[string]models.CloudRecord
	err     error
}

func newMemoryRecords() *memoryRecords {
	return &memoryRecords{records: make(map[string]models.CloudRecord)}
}

func (m *memoryRecords) Upsert(_ context.Context, record models.CloudRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records[record.UserID] = record
	return nil
}

func (m *memoryRecords) Get(_ context.Context, userID string) (models.CloudRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.CloudRecord{}, m.err
	}
	rec, ok := m.records[userID]
	if !ok {
		return models.CloudRecord{}, store.ErrCloudRecordNotFound
	}
	return rec, nil
}

func newTestServices(records store.CloudRecordRepository) *service.Services {
	log := logger.Nop()
	return &service.Services{
		AuthService:        service.NewAuthService(config.App{TokenIssuer: testIssuer, TokenSignKey: testSignKey}, log),
		CloudRecordService: service.NewCloudRecordValidationService().Wrap(service.NewCloudRecordService(records, log)),
		AppInfoService:     service.NewAppInfoService(config.App{Version: "1.4.2"}, models.NewAppBuildInfo("v1.4.2", "2026-10-01", "c0ffee"), log),
	}
}

// newTestHandler builds a handler over an in-memory repository with upload
// hashing enabled.
func newTestHandler(t *testing.T) (*Handler, *memoryRecords) {
	t.Helper()
	records := newMemoryRecords()
	return NewHandler(newTestServices(records), testHashKey, testMaxBodyBytes, logger.Nop()), records
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, userID, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

// uploadBody encodes an upload with a valid hash.
func uploadBody(t *testing.T, req models.UploadRequest) []byte {
	t.Helper()
	data, err := json.Marshal(req.Data)
	require.NoError(t, err)
	req.Hash = utils.NewHasher(testHashKey).HexSum(data)

	body, err := json.Marshal(req)
	require.NoError(t, err)
	return body
}

func doRequest(t *testing.T, router http.Handler, method, path, auth string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}

	h := NewHandler(svcs, "", 0, logger.Nop())
	assert.Same(t, svcs, h.services)
	assert.Nil(t, h.hasher)

	h = NewHandler(svcs, testHashKey, testMaxBodyBytes, logger.Nop())
	assert.NotNil(t, h.hasher)
}

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{service.ErrValidationNoUserID, http.StatusBadRequest},
		{service.ErrValidationKeyNotAllowed, http.StatusBadRequest},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{service.ErrUnauthorizedAccessToDifferentUserData, http.StatusForbidden},
		{errors.Join(errors.New("wrapped"), service.ErrValidationNoData), http.StatusBadRequest},
		{errors.New("database is down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, msg := responseFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, msg)
		})
	}
}
