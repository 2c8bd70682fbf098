// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors produced while reading URL and query parameters.
var (
	ErrInvalidResultID  = errors.New("invalid scan result id")
	ErrInvalidSizeParam = errors.New("invalid `size` query parameter")
	ErrInvalidLimit     = errors.New("invalid `limit` query parameter")
	ErrInvalidKind      = errors.New("invalid `kind` query parameter")
)
