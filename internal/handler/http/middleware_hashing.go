// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/app"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

// uploadHashing checks the "hash" field of an upload against the HMAC of the
// JSON encoded data object. The body is restored for the next handler.
// Without a configured hash key the check is skipped.
func (h *Handler) uploadHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.uploadHashing").Msg("failed to read request body")
			writeError(w, bodyError(err))
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		var req struct {
			Data models.Bundle `json:"data"`
			Hash string        `json:"hash"`
		}
		if err = json.Unmarshal(body, &req); err != nil {
			log.Err(err).Str("func", "*Handler.uploadHashing").Msg("failed to decode JSON")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		// the client hashes the same canonical encoding: sorted keys, compact values
		payload, err := json.Marshal(req.Data)
		if err != nil {
			log.Err(err).Str("func", "*Handler.uploadHashing").Msg("failed to encode data for hashing")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		if !h.hasher.Verify(payload, req.Hash) {
			log.Warn().Str("func", "*Handler.uploadHashing").
				Str("hash_from_request", req.Hash).
				Msg("hashes are not equal")
			http.Error(w, app.MsgHashMismatch, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
