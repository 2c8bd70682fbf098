// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// qr-keeper server handlers and the CLI's remote client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. The remote client matches on the same strings to turn
// a response back into a service error, so both sides must use these values.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgEmptyPayload is returned when a scan carries a blank payload.
	MsgEmptyPayload = "empty payload"

	// MsgNothingToEncode is returned when a generate request has none of the
	// required fields of its kind filled in.
	MsgNothingToEncode = "nothing to encode"

	// MsgUnsupportedKind is returned for kinds the encoder cannot build,
	// e.g. calendar, or unknown kind names.
	MsgUnsupportedKind = "unsupported content kind"

	// MsgInvalidImageSize is returned for PNG sizes outside the renderer's range.
	MsgInvalidImageSize = "invalid image size"

	// MsgResultNotFound is returned when a history entry does not exist.
	MsgResultNotFound = "scan result not found"

	// MsgNoFileExport is returned when a file is requested for a history
	// entry whose kind has no file representation.
	MsgNoFileExport = "no file export for this content kind"

	// MsgInvalidHistoryFile is returned when an imported history file is not
	// a JSON array of history entries.
	MsgInvalidHistoryFile = "invalid history file"

	// MsgVersionIsNotSpecified is returned when the server was started
	// without an application version.
	MsgVersionIsNotSpecified = "version is not specified"
)
