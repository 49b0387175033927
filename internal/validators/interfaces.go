// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming sync requests before they reach the
// cloud record store.
//
// A [Validator] may be scoped to a subset of named fields; without field
// names every rule of the given type is applied.
package validators

import "context"

// Validator validates an arbitrary request value, optionally restricted to
// the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
