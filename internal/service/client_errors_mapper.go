// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/adapter"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The result is always wrapped with ErrTransportFailure so callers can
// classify it without knowing the adapter.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	return errors.Join(ErrTransportFailure, businessError(err))
}

func businessError(err error) error {
	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgNoUserIDProvided:
			return ErrValidationNoUserID
		case app.MsgNoSessionIDProvided:
			return ErrValidationNoSessionID
		case app.MsgNoDataProvided:
			return ErrValidationNoData
		case app.MsgKeyNotAllowed:
			return ErrValidationKeyNotAllowed
		case app.MsgHashMismatch:
			return ErrHashMismatch
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrUnauthorizedAccessToDifferentUserData
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
