// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the sync client to reach the
// cloud sync endpoint.
//
// [CloudAdapter] decouples the sync core from the protocol. The package ships
// an HTTP/REST implementation ([NewHTTPCloudAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized] for
// 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cloud_adapter_mock.go -package=mock

// CloudAdapter is the client side of the remote sync endpoint contract.
type CloudAdapter interface {
	// SetToken stores the bearer token attached to every request.
	SetToken(token string)

	// Token returns the current bearer token or an empty string.
	Token() string

	// Upload replaces the user's cloud record with req. An integrity hash
	// over req.Data is attached when a hash key is configured.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error)

	// Fetch reads the user's cloud record. A missing record is not an error:
	// the response has HasCloudData == false.
	Fetch(ctx context.Context, userID string) (models.DownloadResponse, error)
}
