// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/config"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/store"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

type Services struct {
	AuthService        AuthService
	CloudRecordService CloudRecordService
	AppInfoService     AppInfoService
}

// NewServices wires the cloud endpoint services. The auth provider is chosen
// by cfg.App.AuthProvider.
func NewServices(ctx context.Context, storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	authService, err := newAuthService(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:        authService,
		CloudRecordService: NewCloudRecordValidationService().Wrap(NewCloudRecordService(storages.CloudRecords, logger)),
		AppInfoService:     NewAppInfoService(cfg.App, build, logger),
	}, nil
}

func newAuthService(ctx context.Context, cfg config.StructuredConfig, logger *logger.Logger) (AuthService, error) {
	switch cfg.App.AuthProvider {
	case config.AuthProviderFirebase:
		app, err := store.NewFirebaseApp(ctx, cfg.Firebase)
		if err != nil {
			return nil, err
		}
		client, err := app.Auth(ctx)
		if err != nil {
			return nil, fmt.Errorf("error getting firebase auth client: %w", err)
		}
		return NewFirebaseAuthService(client, logger), nil
	case config.AuthProviderJWT, "":
		return NewAuthService(cfg.App, logger), nil
	}

	return nil, fmt.Errorf("unknown auth provider %q", cfg.App.AuthProvider)
}
