// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	ctx := WithUserID(context.Background(), "player-42")

	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != "player-42" {
		t.Errorf("expected player-42, got %s", userID)
	}
}

func TestGetUserIDFromContext_MissingOrWrongType(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for a missing value")
	}

	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))
	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for a non-string value")
	}

	if _, ok := GetUserIDFromContext(WithUserID(context.Background(), "")); ok {
		t.Error("expected ok=false for an empty id")
	}
}
