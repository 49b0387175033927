// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs long-lived background workers under one context: the
// transport servers of the cloud endpoint and the client's mutation watcher.
package workers

import "context"

// Worker is a long-running background task.
//
// Run blocks until ctx is done or the worker fails. A worker that stops
// because ctx ended returns nil.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
