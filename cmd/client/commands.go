// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/client"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

// errSyncFailed makes a failed round trip exit non-zero after its result has
// been printed.
var errSyncFailed = errors.New("sync failed")

func newRunCmd(o *appOpener) *cobra.Command {
	var prefer string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Reconcile, then upload local changes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := o.open(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "syncing for %s, press Ctrl+C to stop\n", app.UserID())
			return app.Run(cmd.Context(), prefer)
		},
	}
	cmd.Flags().StringVar(&prefer, "prefer", "", "Answer a reconciliation without the dialog: local, cloud or later")
	return cmd
}

func newPushCmd(o *appOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Upload the local state, replacing the cloud record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(o, cmd, func(app *client.App) error {
				return printResult(cmd.OutOrStdout(), app.Push(cmd.Context()))
			})
		},
	}
}

func newPullCmd(o *appOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Download the cloud record, replacing the local state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(o, cmd, func(app *client.App) error {
				return printResult(cmd.OutOrStdout(), app.Pull(cmd.Context()))
			})
		},
	}
}

func newPreviewCmd(o *appOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Compare the cloud record with the local state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(o, cmd, func(app *client.App) error {
				summary, err := app.Summary(cmd.Context(), app.Check(cmd.Context()))
				if err != nil {
					return err
				}
				if summary.PreviewErr != nil {
					return summary.PreviewErr
				}

				w := cmd.OutOrStdout()
				if !summary.Cloud.Exists {
					fmt.Fprintf(w, "no cloud save, %d local entries\n", len(summary.Local))
					return nil
				}
				fmt.Fprintf(w, "cloud updated %s ago\n", summary.CloudAge(time.Now()))
				d := summary.Diff()
				fmt.Fprintf(w, "same:          %d\n", d.Same)
				fmt.Fprintf(w, "different:     %v\n", d.Differ)
				fmt.Fprintf(w, "only local:    %v\n", d.OnlyLocal)
				fmt.Fprintf(w, "only in cloud: %v\n", d.OnlyCloud)
				return nil
			})
		},
	}
}

func newCheckCmd(o *appOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether another device wrote the cloud record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(o, cmd, func(app *client.App) error {
				check := app.Check(cmd.Context())
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "needs sync: %t\n", check.NeedsSync)
				fmt.Fprintf(w, "reason:     %s\n", check.Reason)
				if check.RemoteUpdatedAt != nil {
					fmt.Fprintf(w, "remote:     %s (%s)\n", check.RemoteUpdatedAt.Format(time.RFC3339), check.RemoteSessionID)
				}
				return check.Err
			})
		},
	}
}

func newStatusCmd(o *appOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the sync status and the device session id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(o, cmd, func(app *client.App) error {
				status, sessionID, err := app.Status(cmd.Context())
				if err != nil {
					return err
				}
				out := struct {
					models.SyncStatus
					SessionID string `json:"sessionId"`
				}{status, sessionID}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			})
		},
	}
}

func newResetCmd(o *appOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the sync status so the next run asks before uploading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(o, cmd, func(app *client.App) error {
				if err := app.Reset(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "sync status cleared")
				return nil
			})
		},
	}
}

func newReconcileCmd(o *appOpener) *cobra.Command {
	var prefer string
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Choose between the local state and the cloud record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(o, cmd, func(app *client.App) error {
				choice, result, err := app.Reconcile(cmd.Context(), prefer)
				if err != nil {
					return err
				}
				if _, ok := choice.Direction(); !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "nothing changed")
					return nil
				}
				return printResult(cmd.OutOrStdout(), result)
			})
		},
	}
	cmd.Flags().StringVar(&prefer, "prefer", "", "Skip the dialog: local, cloud or later")
	return cmd
}

func newSetCmd(o *appOpener) *cobra.Command {
	return &cobra.Command{
		Use:     "set <key> <json>",
		Short:   "Write one local entry",
		Example: `  yokaidle-sync set points 120`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(o, cmd, func(app *client.App) error {
				return app.Set(cmd.Context(), args[0], []byte(args[1]))
			})
		},
	}
}

func withApp(o *appOpener, cmd *cobra.Command, fn func(app *client.App) error) error {
	app, err := o.open(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	return fn(app)
}

func printResult(w io.Writer, result models.SyncResult) error {
	if result.OK {
		if result.Op == models.SyncOpDownload {
			fmt.Fprintf(w, "%s ok, %d entries applied\n", result.Op, result.Applied)
		} else {
			fmt.Fprintf(w, "%s ok\n", result.Op)
		}
		return nil
	}

	fmt.Fprintf(w, "%s failed: %s\n", result.Op, result.Reason)
	if result.Err != nil {
		return fmt.Errorf("%w: %w", errSyncFailed, result.Err)
	}
	return errSyncFailed
}
