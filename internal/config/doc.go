// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the sync client and the cloud endpoint.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. Config file (JSON or TOML, chosen by extension)
//
// The main entry points are [GetStructuredConfig] for the server runtime and
// [GetClientConfig] for the client daemon and CLI.
package config
