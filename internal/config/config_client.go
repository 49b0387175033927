// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the client for upload integrity checks.
	HashKey string
	// UserID overrides the user id read from the token subject.
	UserID string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the cloud endpoint address.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the bearer JWT.
	Token string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains sync scheduler and daemon settings.
type ClientWorkers struct {
	DebounceWindow   time.Duration
	PeriodicInterval time.Duration
	FlushOnStop      bool
	WatchLocalStore  bool
}

// ClientLog contains client log settings.
type ClientLog struct {
	FilePath string
	Level    string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Log     ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// flags reads the values of a flag set registered with [RegisterClientFlags];
// nil skips the flag layer.
func GetClientConfig(flags FlagSource) (*ClientConfig, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			UserID:  cfg.App.UserID,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			DebounceWindow:   cfg.Workers.DebounceWindow,
			PeriodicInterval: cfg.Workers.PeriodicInterval,
			FlushOnStop:      cfg.Workers.FlushOnStop,
			WatchLocalStore:  !cfg.Workers.DisableWatcher,
		},
		Log: ClientLog{
			FilePath: cfg.Log.FilePath,
			Level:    cfg.Log.Level,
		},
	}
}
