// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the on-device sync daemon.
//
// [App] wires the local store, the cloud adapter and the sync core for one
// user. [App.Run] reconciles once at startup, then keeps the cloud record up
// to date from local mutations until its context is cancelled.
package client
