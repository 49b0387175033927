// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUserID targets the owner of the cloud record.
	FieldUserID = "user_id"

	// FieldSessionID targets the writer's session id.
	FieldSessionID = "session_id"

	// FieldData targets the presence of the bundle.
	FieldData = "data"

	// FieldDataKeys checks every bundle key against the sync allow-list.
	FieldDataKeys = "data_keys"

	// FieldDataValues checks that every bundle value is a JSON document.
	FieldDataValues = "data_values"
)

// maxIDLength bounds user and session ids.
const maxIDLength = 256

// SyncRequestValidator validates the requests of the cloud sync endpoint.
type SyncRequestValidator struct{}

func NewSyncRequestValidator() Validator {
	return &SyncRequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types are
// models.UploadRequest and models.DownloadRequest, as values or pointers.
// Returns ErrUnsupportedType for anything else.
func (v *SyncRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(ctx, *value, fields...)

	case models.DownloadRequest:
		return v.validateDownloadRequest(ctx, value, fields...)
	case *models.DownloadRequest:
		return v.validateDownloadRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUploadRequest checks, by default, every field of an upload.
func (v *SyncRequestValidator) validateUploadRequest(_ context.Context, request models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldSessionID, FieldData, FieldDataKeys, FieldDataValues}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if !validID(request.UserID) {
				return ErrInvalidUserID
			}
		case FieldSessionID:
			if !validID(request.SessionID) {
				return ErrInvalidSessionID
			}
		case FieldData:
			if request.Data == nil {
				return ErrEmptyData
			}
		case FieldDataKeys:
			for _, key := range request.Data.Keys() {
				if !models.IsSyncedKey(key) {
					return fmt.Errorf("%w: %q", ErrKeyNotAllowed, key)
				}
			}
		case FieldDataValues:
			for _, key := range request.Data.Keys() {
				if !json.Valid(request.Data[key]) {
					return fmt.Errorf("%w: %q", ErrInvalidValue, key)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncRequestValidator) validateDownloadRequest(_ context.Context, request models.DownloadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if !validID(request.UserID) {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validID(id string) bool {
	return strings.TrimSpace(id) != "" && len(id) <= maxIDLength
}
