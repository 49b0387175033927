// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/service"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher verifies upload hashes; nil disables the check.
	hasher *utils.Hasher

	// maxBodyBytes caps decompressed request bodies; 0 disables the cap.
	maxBodyBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, maxBodyBytes int64, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:     services,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
	if hashKey != "" {
		h.hasher = utils.NewHasher(hashKey)
	}
	return h
}
