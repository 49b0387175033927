// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/adapter"
)

// describePreviewError turns a failed cloud preview into one line for the
// dialog headline.
func describePreviewError(err error) string {
	if err == nil {
		return ""
	}

	var netErr net.Error
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "The cloud rejected the token, sign in again"
	case errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr):
		return "No network or the sync server is unavailable"
	}

	// resty wraps dial failures in url.Error with a plain message
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") || strings.Contains(s, "no such host") {
		return "No network or the sync server is unavailable"
	}
	return "Cloud check failed: " + err.Error()
}
