// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"time"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/config"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/handler"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/workers"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	workers *workers.Workers
	logger  *logger.Logger
}

// NewServer creates a transport server for every configured address.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	ws := workers.NewWorkers()

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		ws.Add(newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		ws.Add(newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if ws.Len() == 0 {
		return nil, errNoServersAreCreated
	}

	return &server{workers: ws, logger: logger}, nil
}

// Run serves on every transport until ctx is done. If one transport fails
// the others are shut down too.
func (s *server) Run(ctx context.Context) error {
	if err := s.workers.Run(ctx); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
