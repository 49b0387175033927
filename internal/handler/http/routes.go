// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip, h.withBodyLimit)

	router.Get("/api/version/", h.getServerVersion)
	router.Get("/api/version/build", h.getBuildInfo)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.uploadHashing).Post("/api/sync/upload", h.upload)
		r.Post("/api/sync/download", h.download)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
