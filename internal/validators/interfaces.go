// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user-supplied generate input before it reaches the
// payload builder. The builder itself never rejects input, so everything that
// should suppress generation (an empty SSID, a contact with no name, email or
// phone) is enforced here.
//
// Validate accepts an optional list of field names to restrict which checks
// run; with no names the default set for the value's type is used.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
