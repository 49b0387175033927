// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"run", "push", "pull", "preview", "check", "status", "reset", "reconcile", "set"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"server", "token", "user", "dsn", "config", "debounce", "periodic", "flush-on-stop", "no-watch"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestSetCmd_RequiresTwoArgs(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"set", "points"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	assert.Error(t, root.Execute())
}

func TestPrintResult(t *testing.T) {
	tests := []struct {
		name    string
		result  models.SyncResult
		want    string
		wantErr bool
	}{
		{
			name:   "upload ok",
			result: models.SyncResult{Op: models.SyncOpUpload, OK: true},
			want:   "upload ok\n",
		},
		{
			name:   "download ok",
			result: models.SyncResult{Op: models.SyncOpDownload, OK: true, Applied: 4},
			want:   "download ok, 4 entries applied\n",
		},
		{
			name:    "no remote data",
			result:  models.SyncFailed(models.SyncOpDownload, models.FailureNoRemoteData, nil),
			want:    "download failed: no_remote_data\n",
			wantErr: true,
		},
		{
			name:    "transport",
			result:  models.SyncFailed(models.SyncOpUpload, models.FailureTransport, errors.New("boom")),
			want:    "upload failed: transport_failure\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := printResult(&out, tt.result)

			assert.Equal(t, tt.want, out.String())
			if tt.wantErr {
				require.ErrorIs(t, err, errSyncFailed)
				return
			}
			require.NoError(t, err)
		})
	}
}
