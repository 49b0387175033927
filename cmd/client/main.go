// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/client"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/config"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/internal/tui"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "yokaidle-sync",
		Short:        "Keep Yo-kaidle game progress in sync with the cloud",
		Version:      models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String(),
		SilenceUsage: true,
	}

	flags := config.RegisterClientFlags(root.PersistentFlags())
	opener := &appOpener{flags: flags}

	root.AddCommand(
		newRunCmd(opener),
		newPushCmd(opener),
		newPullCmd(opener),
		newPreviewCmd(opener),
		newCheckCmd(opener),
		newStatusCmd(opener),
		newResetCmd(opener),
		newReconcileCmd(opener),
		newSetCmd(opener),
	)
	return root
}

// appOpener builds the client app once flags have been parsed.
type appOpener struct {
	flags config.FlagSource
}

func (o *appOpener) open(cmd *cobra.Command) (*client.App, error) {
	cfg, err := config.GetClientConfig(o.flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("yokaidle-sync", cfg.Log.FilePath)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	log.Debug().Str("command", cmd.Name()).Msg("starting")

	app, err := client.NewApp(cmd.Context(), cfg, tui.New(log), log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return nil, err
	}
	return app, nil
}
