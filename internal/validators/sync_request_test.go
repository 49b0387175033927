// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

func validUploadRequest() models.UploadRequest {
	return models.UploadRequest{
		UserID:    "user-1",
		SessionID: "lx1abc-0123456789ab",
		Data: models.Bundle{
			"medallium": json.RawMessage(`["Jibanyan","Whisper"]`),
			"points":    json.RawMessage(`100`),
		},
	}
}

func TestNewSyncRequestValidator(t *testing.T) {
	require.NotNil(t, NewSyncRequestValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewSyncRequestValidator()
	ctx := context.Background()

	req := validUploadRequest()
	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))
	assert.NoError(t, v.Validate(ctx, models.DownloadRequest{UserID: "user-1"}))
	assert.NoError(t, v.Validate(ctx, &models.DownloadRequest{UserID: "user-1"}))
	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
}

func TestValidateUploadRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.UploadRequest)
		fields  []string
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(r *models.UploadRequest) {},
		},
		{
			name:   "empty bundle is valid",
			mutate: func(r *models.UploadRequest) { r.Data = models.Bundle{} },
		},
		{
			name:    "empty user id",
			mutate:  func(r *models.UploadRequest) { r.UserID = " " },
			wantErr: ErrInvalidUserID,
		},
		{
			name:    "too long user id",
			mutate:  func(r *models.UploadRequest) { r.UserID = strings.Repeat("u", maxIDLength+1) },
			wantErr: ErrInvalidUserID,
		},
		{
			name:    "empty session id",
			mutate:  func(r *models.UploadRequest) { r.SessionID = "" },
			wantErr: ErrInvalidSessionID,
		},
		{
			name:    "nil data",
			mutate:  func(r *models.UploadRequest) { r.Data = nil },
			wantErr: ErrEmptyData,
		},
		{
			name:    "key outside allow-list",
			mutate:  func(r *models.UploadRequest) { r.Data["authToken"] = json.RawMessage(`"secret"`) },
			wantErr: ErrKeyNotAllowed,
		},
		{
			name:    "invalid json value",
			mutate:  func(r *models.UploadRequest) { r.Data["points"] = json.RawMessage(`{`) },
			wantErr: ErrInvalidValue,
		},
		{
			name:   "scoped to user id ignores session",
			mutate: func(r *models.UploadRequest) { r.SessionID = "" },
			fields: []string{FieldUserID},
		},
		{
			name:    "unknown field",
			mutate:  func(r *models.UploadRequest) {},
			fields:  []string{"version"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewSyncRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUploadRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateDownloadRequest(t *testing.T) {
	v := NewSyncRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), models.DownloadRequest{}), ErrInvalidUserID)
	assert.ErrorIs(t, v.Validate(context.Background(), models.DownloadRequest{UserID: "u"}, FieldData), ErrUnknownField)
}
