// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/config"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/handler"
	myGRPC "github.com/mixel34p/Yo-kaidle-sub001/internal/handler/grpc"
	myHTTP "github.com/mixel34p/Yo-kaidle-sub001/internal/handler/http"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/service"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

func testServices() *service.Services {
	return &service.Services{
		AppInfoService: service.NewAppInfoService(config.App{Version: "2.0.0"}, models.NewAppBuildInfo("", "", ""), logger.Nop()),
	}
}

func listen(t *testing.T) net.Listener {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return lis
}

func TestNewServer_NoAddresses(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestHTTPServer_ServesUntilCancelled(t *testing.T) {
	h := myHTTP.NewHandler(testServices(), "", 0, logger.Nop())
	srv := newHTTPServer(h.Init(), config.Server{RequestTimeout: time.Second}, logger.Nop())
	lis := listen(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.serve(ctx, lis) }()

	resp, err := http.Get("http://" + lis.Addr().String() + "/api/version/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2.0.0", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("http server did not shut down")
	}
}

func TestGRPCServer_ServesUntilCancelled(t *testing.T) {
	srv := newGRPCServer(myGRPC.NewHandler(testServices(), logger.Nop()), config.Server{}, logger.Nop())
	lis := listen(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.serve(ctx, lis) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("grpc server did not shut down")
	}
}

func TestServer_ListenFailureStopsOtherTransports(t *testing.T) {
	busy := listen(t)
	defer busy.Close()

	handlers, err := handler.NewHandlers(testServices(), config.StructuredConfig{
		Server: config.Server{HTTPAddress: busy.Addr().String(), GRPCAddress: "127.0.0.1:0"},
	}, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, config.Server{HTTPAddress: busy.Addr().String(), GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after a listener failure")
	}
}
