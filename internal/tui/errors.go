// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-qr-keeper/internal/service"
)

var errNoScanner = errors.New("scan service is not set")

// humanizeScanError turns service and transport failures into a status line.
func humanizeScanError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrEmptyPayload):
		return "Nothing scanned: the payload is empty"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unreachable"
	}

	return err.Error()
}
