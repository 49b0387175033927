// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors [StructuredConfig] for config files. Durations are
// written as strings ("3s", "5m").
type fileConfig struct {
	App struct {
		TokenSignKey string `json:"token_sign_key" toml:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer" toml:"token_issuer"`
		HashKey      string `json:"hash_key" toml:"hash_key"`
		Version      string `json:"version" toml:"version"`
		UserID       string `json:"user_id" toml:"user_id"`
		AuthProvider string `json:"auth_provider" toml:"auth_provider"`
	} `json:"app" toml:"app"`

	Storage struct {
		Backend string `json:"backend" toml:"backend"`
		DB      struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db" toml:"db"`
		Firestore struct {
			Collection string `json:"collection" toml:"collection"`
		} `json:"firestore" toml:"firestore"`
	} `json:"storage" toml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" toml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
		MaxBodyBytes   int64    `json:"max_body_bytes" toml:"max_body_bytes"`
	} `json:"server" toml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
		Token          string   `json:"token" toml:"token"`
	} `json:"adapter" toml:"adapter"`

	Workers struct {
		DebounceWindow   Duration `json:"debounce_window" toml:"debounce_window"`
		PeriodicInterval Duration `json:"periodic_interval" toml:"periodic_interval"`
		FlushOnStop      bool     `json:"flush_on_stop" toml:"flush_on_stop"`
		DisableWatcher   bool     `json:"disable_watcher" toml:"disable_watcher"`
	} `json:"workers" toml:"workers"`

	Log struct {
		FilePath string `json:"file" toml:"file"`
		Level    string `json:"level" toml:"level"`
	} `json:"log" toml:"log"`

	Firebase struct {
		ProjectID       string `json:"project_id" toml:"project_id"`
		CredentialsFile string `json:"credentials_file" toml:"credentials_file"`
	} `json:"firebase" toml:"firebase"`
}

// parseFile reads a config file. Files ending in .toml are decoded as TOML,
// everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	var fc fileConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error reading a json file: %w", err)
		}
		defer f.Close()

		if err := json.NewDecoder(f).Decode(&fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey: fc.App.TokenSignKey,
			TokenIssuer:  fc.App.TokenIssuer,
			HashKey:      fc.App.HashKey,
			Version:      fc.App.Version,
			UserID:       fc.App.UserID,
			AuthProvider: fc.App.AuthProvider,
		},
		Storage: Storage{
			Backend:   fc.Storage.Backend,
			DB:        DB{DSN: fc.Storage.DB.DSN},
			Firestore: Firestore{Collection: fc.Storage.Firestore.Collection},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			GRPCAddress:    fc.Server.GRPCAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
			MaxBodyBytes:   fc.Server.MaxBodyBytes,
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
			Token:          fc.Adapter.Token,
		},
		Workers: Workers{
			DebounceWindow:   time.Duration(fc.Workers.DebounceWindow),
			PeriodicInterval: time.Duration(fc.Workers.PeriodicInterval),
			FlushOnStop:      fc.Workers.FlushOnStop,
			DisableWatcher:   fc.Workers.DisableWatcher,
		},
		Log: Log{
			FilePath: fc.Log.FilePath,
			Level:    fc.Log.Level,
		},
		Firebase: Firebase{
			ProjectID:       fc.Firebase.ProjectID,
			CredentialsFile: fc.Firebase.CredentialsFile,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and TOML, and from a nanosecond number in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
