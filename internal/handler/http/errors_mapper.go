// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/app"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/service"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:                   {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrValidationNoUserID:                    {http.StatusBadRequest, app.MsgNoUserIDProvided},
	service.ErrValidationNoSessionID:                 {http.StatusBadRequest, app.MsgNoSessionIDProvided},
	service.ErrValidationNoData:                      {http.StatusBadRequest, app.MsgNoDataProvided},
	service.ErrValidationKeyNotAllowed:               {http.StatusBadRequest, app.MsgKeyNotAllowed},
	service.ErrHashMismatch:                          {http.StatusBadRequest, app.MsgHashMismatch},
	service.ErrTokenIsExpiredOrInvalid:               {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrUnauthorizedAccessToDifferentUserData: {http.StatusForbidden, app.MsgAccessDenied},
	ErrPayloadTooLarge:                               {http.StatusRequestEntityTooLarge, app.MsgPayloadTooLarge},
}

// responseFromError returns the status code and body message for err.
// Unknown errors become 500 with a generic message.
func responseFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// bodyError classifies a failure to read or decode a request body.
func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: limit %d bytes", ErrPayloadTooLarge, tooLarge.Limit)
	}
	return service.ErrInvalidDataProvided
}

func writeError(w http.ResponseWriter, err error) {
	status, message := responseFromError(err)
	http.Error(w, message, status)
}
