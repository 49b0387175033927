// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is a transport server managed by this package. It satisfies
// [workers.Worker].
type Server interface {
	// Run serves requests until ctx is done, then shuts down gracefully and
	// returns nil. A listener failure is returned as an error.
	Run(ctx context.Context) error
}
