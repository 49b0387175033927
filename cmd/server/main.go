// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/config"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/handler"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/server"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/service"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/store"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build.String())

	flags := config.RegisterServerFlags(pflag.CommandLine)
	pflag.Parse()

	log := logger.NewLogger("yokaidle-cloud")
	cfg, err := config.GetStructuredConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(ctx, storages, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("server starting")
	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		stop()
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
