// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/config"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
)

func serverConfig(httpAddr, grpcAddr string) config.StructuredConfig {
	return config.StructuredConfig{Server: config.Server{HTTPAddress: httpAddr, GRPCAddress: grpcAddr}}
}

// Handlers only store the services pointer at construction time, so nil is
// safe here.
func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.StructuredConfig
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{name: "both", cfg: serverConfig(":8080", ":9090"), wantHTTP: true, wantGRPC: true},
		{name: "only http", cfg: serverConfig(":8080", ""), wantHTTP: true},
		{name: "only grpc", cfg: serverConfig("", ":9090"), wantGRPC: true},
		{name: "none", cfg: serverConfig("", ""), wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(nil, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := serverConfig(":8080", ":9090")

	h1, err := NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)
	h2, err := NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotSame(t, h1.HTTP, h2.HTTP)
	assert.NotSame(t, h1.GRPC, h2.GRPC)
}
