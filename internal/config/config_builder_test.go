// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterLayerOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "first"}},
		&StructuredConfig{App: App{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version, "zero fields must not erase earlier values")
	assert.Equal(t, "second", cfg.App.TokenIssuer)
}

// ── layers ────────────────────────────────────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
	assert.Equal(t, 3*time.Second, cfg.Workers.DebounceWindow)
	assert.Equal(t, 5*time.Minute, cfg.Workers.PeriodicInterval)
	assert.False(t, cfg.Workers.FlushOnStop)
}

func TestWithEnv_OverridesDefaults(t *testing.T) {
	setEnvVars(t, map[string]string{"WORKERS_DEBOUNCE_WINDOW": "750ms"})

	cfg, err := newConfigBuilder().withDefaults().withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, cfg.Workers.DebounceWindow)
	assert.Equal(t, 5*time.Minute, cfg.Workers.PeriodicInterval)
}

func TestWithEnv_SetsErrorOnInvalidValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "forever"})

	_, err := newConfigBuilder().withEnv().build()
	require.Error(t, err)
}

func TestWithFlags_NilSourceIsNoOp(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

func TestWithFlags_AppendsLayer(t *testing.T) {
	b := newConfigBuilder().withFlags(func() *StructuredConfig {
		return &StructuredConfig{App: App{UserID: "player-1"}}
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "player-1", cfg.App.UserID)
}

func TestWithFile_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_UsesLastPath(t *testing.T) {
	first := writeConfigFile(t, "first.json", `{"app": {"version": "first"}}`)
	last := writeConfigFile(t, "last.json", `{"app": {"version": "last"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: first},
		&StructuredConfig{FilePath: last},
	)

	cfg, err := b.withFile().build()
	require.NoError(t, err)
	assert.Equal(t, "last", cfg.App.Version)
}

func TestWithFile_SetsErrorWhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/nonexistent/config.json"})

	b.withFile()
	require.Error(t, b.err)
}

func TestWithFile_DoesNotAppendWhenErrorAlreadySet(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{}`)

	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})

	b.withFile()
	assert.Len(t, b.configs, 1)
}

// ── entry points ──────────────────────────────────────────────────────────────

func TestGetClientConfig_FromEnvAndDefaults(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DATABASE_URI": "game.db",
		"ADAPTER_ADDRESS":         "localhost:8080",
	})

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "game.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Workers.DebounceWindow)
	assert.True(t, cfg.Workers.WatchLocalStore)
}

func TestGetClientConfig_FileOverridesFlags(t *testing.T) {
	clearEnvVars(t)
	path := writeConfigFile(t, "client.toml", `
[adapter]
http_address = "from-file:8080"
`)

	cfg, err := GetClientConfig(func() *StructuredConfig {
		return &StructuredConfig{
			FilePath: path,
			Adapter:  Adapter{HTTPAddress: "from-flags:8080"},
			Storage:  Storage{DB: DB{DSN: "game.db"}},
		}
	})
	require.NoError(t, err)
	assert.Equal(t, "from-file:8080", cfg.Adapter.HTTPAddress)
}

func TestGetStructuredConfig_ValidatesServer(t *testing.T) {
	clearEnvVars(t)

	_, err := GetStructuredConfig(nil)
	require.ErrorIs(t, err, ErrInvalidServerConfigs)
}
