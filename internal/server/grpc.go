// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/config"
	myGRPC "github.com/mixel34p/Yo-kaidle-sub001/internal/handler/grpc"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address string
	server  *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  s,
		logger:  logger,
	}
}

func (g *grpcServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("grpc listen on %s: %w", g.address, err)
	}
	return g.serve(ctx, lis)
}

func (g *grpcServer) serve(ctx context.Context, lis net.Listener) error {
	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- g.server.Serve(lis)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("grpc serve: %w", err)
	case <-ctx.Done():
	}

	g.logger.Info().Msg("gRPC server Shutdown")
	g.shutdown(context.WithoutCancel(ctx))
	<-serveErr
	return nil
}

// shutdown reports NOT_SERVING to health probes, then drains in-flight
// calls. GracefulStop has no deadline, so it is forced after shutdownTimeout.
func (g *grpcServer) shutdown(ctx context.Context) {
	g.handler.Shutdown()

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		g.server.Stop()
	}
}
