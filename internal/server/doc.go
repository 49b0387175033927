// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the cloud endpoint's transports.
//
// It starts the HTTP and gRPC listeners that are configured, waits for the
// context to end or for a listener to fail, and shuts every transport down
// gracefully.
package server
