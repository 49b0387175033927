// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoUserID          = errors.New("no user id: pass --user or a bearer token")
	ErrKeyNotSynced      = errors.New("key is not on the sync allow-list")
	ErrInvalidValue      = errors.New("value is not valid JSON")
	ErrUnknownPreference = errors.New("unknown preference, want local, cloud or later")
)
