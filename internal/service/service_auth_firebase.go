// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"firebase.google.com/go/auth"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

// IDTokenVerifier is the part of the Firebase auth client used to verify ID
// tokens. *auth.Client implements it.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type firebaseAuthService struct {
	verifier IDTokenVerifier
	logger   *logger.Logger
}

// NewFirebaseAuthService returns an [AuthService] that accepts Firebase ID
// tokens. The Firebase uid becomes the user id.
func NewFirebaseAuthService(verifier IDTokenVerifier, logger *logger.Logger) AuthService {
	return &firebaseAuthService{verifier: verifier, logger: logger}
}

func (f *firebaseAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	idToken, err := f.verifier.VerifyIDToken(ctx, tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("firebase id token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	if idToken.UID == "" {
		return models.Token{}, fmt.Errorf("%w: empty uid", ErrTokenIsExpiredOrInvalid)
	}

	token := models.Token{SignedString: tokenString, UserID: idToken.UID}
	token.Subject = idToken.UID
	token.Issuer = idToken.Issuer
	return token, nil
}
