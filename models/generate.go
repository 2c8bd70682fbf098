// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// ErrorCorrectionLevel is the QR redundancy setting handed to the rendering engine.
type ErrorCorrectionLevel string

const (
	ECLLow      ErrorCorrectionLevel = "L"
	ECLMedium   ErrorCorrectionLevel = "M"
	ECLQuartile ErrorCorrectionLevel = "Q"
	ECLHigh     ErrorCorrectionLevel = "H"

	// DefaultErrorCorrectionLevel is used whenever no level, or an unknown one, is given.
	DefaultErrorCorrectionLevel = ECLMedium
)

// ParseErrorCorrectionLevel resolves L/M/Q/H case-insensitively.
func ParseErrorCorrectionLevel(s string) (ErrorCorrectionLevel, bool) {
	switch ErrorCorrectionLevel(strings.ToUpper(strings.TrimSpace(s))) {
	case ECLLow:
		return ECLLow, true
	case ECLMedium:
		return ECLMedium, true
	case ECLQuartile:
		return ECLQuartile, true
	case ECLHigh:
		return ECLHigh, true
	}
	return "", false
}

// OrDefault returns l, or DefaultErrorCorrectionLevel if l is not a known level.
func (l ErrorCorrectionLevel) OrDefault() ErrorCorrectionLevel {
	if parsed, ok := ParseErrorCorrectionLevel(string(l)); ok {
		return parsed
	}
	return DefaultErrorCorrectionLevel
}

// GenerateOptions is the encode-side configuration. Only ErrorCorrectionLevel is
// consumed while building; Size is passed straight through to the renderer.
type GenerateOptions struct {
	ErrorCorrectionLevel ErrorCorrectionLevel `json:"errorCorrectionLevel,omitempty"`
	Size                 int                  `json:"size,omitempty"`
}

// GenerateRequest is the transport form of a build call. Fields holds the
// JSON encoding of the FieldSet variant that matches Kind.
type GenerateRequest struct {
	Kind    ContentKind     `json:"kind"`
	Fields  json.RawMessage `json:"fields"`
	Options GenerateOptions `json:"options"`
}

// GeneratedPayload is the canonical payload produced for a FieldSet.
type GeneratedPayload struct {
	Kind                 ContentKind          `json:"kind" yaml:"kind"`
	Payload              string               `json:"payload" yaml:"payload"`
	ErrorCorrectionLevel ErrorCorrectionLevel `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}
