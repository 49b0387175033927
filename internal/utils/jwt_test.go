// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("yokaidle", "player-123", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Subject != "player-123" {
		t.Errorf("expected subject 'player-123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	cases := []struct {
		issuer, user, key string
		dur               time.Duration
	}{
		{"", "u", "k", time.Hour},
		{"i", "", "k", time.Hour},
		{"i", "u", "", time.Hour},
		{"i", "u", "k", 0},
	}
	for _, c := range cases {
		if _, err := GenerateJWTToken(c.issuer, c.user, c.dur, c.key); err == nil {
			t.Errorf("expected error for %+v", c)
		}
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	token, err := GenerateJWTToken("yokaidle", "player-7", time.Hour, "secret")
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret", "yokaidle")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.UserID != "player-7" {
		t.Errorf("expected player-7, got %s", parsed.UserID)
	}

	if _, err := ValidateAndParseJWTToken(token.SignedString, "wrong", "yokaidle"); err == nil {
		t.Error("expected error for a wrong key")
	}
	if _, err := ValidateAndParseJWTToken(token.SignedString, "secret", "someone-else"); err == nil {
		t.Error("expected error for a wrong issuer")
	}
	if _, err := ValidateAndParseJWTToken("not.a.token", "secret", "yokaidle"); err == nil {
		t.Error("expected error for a malformed token")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("yokaidle", "player-7", -time.Minute, "secret")
	if err != nil {
		t.Fatal(err)
	}

	_, err = ValidateAndParseJWTToken(token.SignedString, "secret", "yokaidle")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc.def.ghi")
	if err != nil || tok != "abc.def.ghi" {
		t.Errorf("unexpected result %q, %v", tok, err)
	}

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		if _, err := ParseBearerToken(header); !errors.Is(err, ErrInvalidAuthorizationHeader) {
			t.Errorf("expected ErrInvalidAuthorizationHeader for %q, got %v", header, err)
		}
	}
}

func TestSubjectFromJWT(t *testing.T) {
	token, err := GenerateJWTToken("yokaidle", "player-9", time.Hour, "any-key")
	if err != nil {
		t.Fatal(err)
	}

	sub, err := SubjectFromJWT(token.SignedString)
	if err != nil || sub != "player-9" {
		t.Errorf("unexpected result %q, %v", sub, err)
	}

	if _, err := SubjectFromJWT("garbage"); err == nil {
		t.Error("expected error for garbage input")
	}
}
