// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/service"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/utils"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

// upload replaces the caller's cloud record with the request bundle.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("invalid JSON was passed")
		writeError(w, bodyError(err))
		return
	}

	if err := h.checkOwner(r, req.UserID); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.upload").Str("requested_user_id", req.UserID).Send()
		writeError(w, err)
		return
	}

	record, err := h.services.CloudRecordService.Save(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error saving cloud record")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.UploadResponse{Success: true, UpdatedAt: record.UpdatedAt}, http.StatusOK)
}

// download returns the caller's cloud record. A missing record is a 200 with
// hasCloudData set to false.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DownloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.download").Msg("invalid JSON was passed")
		writeError(w, bodyError(err))
		return
	}

	if err := h.checkOwner(r, req.UserID); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.download").Str("requested_user_id", req.UserID).Send()
		writeError(w, err)
		return
	}

	resp, err := h.services.CloudRecordService.Load(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.download").Msg("error loading cloud record")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// checkOwner rejects requests addressing another user's record. An empty
// requested id is left to validation.
func (h *Handler) checkOwner(r *http.Request, requested string) error {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return ErrNoUserIDInContext
	}
	if requested != "" && requested != userID {
		return service.ErrUnauthorizedAccessToDifferentUserData
	}
	return nil
}
