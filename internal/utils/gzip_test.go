// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGzipRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte(`{"medallium":["Jibanyan","Whisper"]}`), 64)

	packed, err := GzipBytes(data)
	require.NoError(t, err)
	assert.Less(t, len(packed), len(data))

	unpacked, err := GunzipBytes(packed)
	require.NoError(t, err)
	assert.Equal(t, data, unpacked)
}

func TestGunzipBytes_InvalidStream(t *testing.T) {
	_, err := GunzipBytes([]byte("plain text"))
	require.Error(t, err)
}
