// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the cloud sync endpoint.
//
// Requests pass through tracing, access logging and gzip middleware; the sync
// routes additionally require a bearer token and, for uploads, a valid
// integrity hash before they reach the service layer.
package http
