// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks note input before it reaches the store.
//
// A Validator receives the value and the names of the fields to check; with
// no names it checks every rule that applies to the value's type. Errors are
// package sentinels so callers can map them with errors.Is.
package validators

import "context"

// Validator validates v, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
