// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-qr-keeper/internal/adapter"
	"github.com/MKhiriev/go-qr-keeper/internal/app"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgEmptyPayload:
			return ErrEmptyPayload
		case app.MsgUnsupportedKind:
			return ErrUnsupportedKind
		case app.MsgInvalidImageSize:
			return ErrInvalidImageSize
		case app.MsgInvalidDataProvided:
			return ErrInvalidFields
		case app.MsgInvalidHistoryFile:
			return store.ErrInvalidHistoryFile
		}

	case errors.Is(err, adapter.ErrUnprocessable):
		if msg == app.MsgNothingToEncode {
			return ErrNothingToEncode
		}

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrResultNotFound

	case errors.Is(err, adapter.ErrInternalServerError):
		if msg == app.MsgVersionIsNotSpecified {
			return ErrVersionIsNotSpecified
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
