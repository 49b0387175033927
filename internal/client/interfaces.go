// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/tui"
)

// Reconciler asks the user which side wins when local and cloud state may
// disagree.
type Reconciler interface {
	Reconcile(ctx context.Context, summary tui.Summary) (tui.ReconcileChoice, error)
}
