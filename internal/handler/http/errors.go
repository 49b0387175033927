// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is logged when a protected route is called
	// without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserIDInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoUserIDInContext = errors.New("no user id in request context")

	// ErrPayloadTooLarge means the request body exceeded the configured cap.
	ErrPayloadTooLarge = errors.New("request body too large")
)
