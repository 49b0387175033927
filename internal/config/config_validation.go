// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the merged server configuration is usable.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxBodyBytes <= 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.App.AuthProvider {
	case AuthProviderJWT:
		if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
			return ErrInvalidAppConfigs
		}
	case AuthProviderFirebase:
		if cfg.Firebase.ProjectID == "" {
			return fmt.Errorf("%w: firebase auth needs a project id", ErrInvalidAppConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown auth provider %q", ErrInvalidAppConfigs, cfg.App.AuthProvider)
	}

	switch cfg.Storage.Backend {
	case BackendPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: postgres backend needs a DSN", ErrInvalidStorageConfigs)
		}
	case BackendFirestore:
		if cfg.Firebase.ProjectID == "" || cfg.Storage.Firestore.Collection == "" {
			return fmt.Errorf("%w: firestore backend needs a project id and a collection", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.DebounceWindow <= 0 || cfg.Workers.PeriodicInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Workers.DebounceWindow >= cfg.Workers.PeriodicInterval {
		return fmt.Errorf("%w: debounce window must be shorter than the periodic interval", ErrInvalidWorkerConfigs)
	}

	return nil
}
