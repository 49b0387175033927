// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidSessionID = errors.New("invalid session ID")
	ErrEmptyData        = errors.New("data is required")
	ErrKeyNotAllowed    = errors.New("data key is not on the sync allow-list")
	ErrInvalidValue     = errors.New("data value is not valid JSON")
)
