// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the business rules applied to parsed input
// before it reaches the accounting engine or the store.
//
// Two validators are provided:
//   - MaterialValidator checks a parsed submission (non-negative quantities,
//     strictly positive material per product, owner present).
//   - UserValidator checks registration and login credentials.
//
// Both accept an optional list of field names to restrict validation to.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
