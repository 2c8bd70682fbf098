// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the CLI's client for a remote qr-keeper server.
//
// [ServerAdapter] decouples the CLI services from the protocol. The package
// ships an HTTP/REST implementation built on resty ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go, so callers can use [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-qr-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the remote counterpart of the scan, generate and history
// services.
type ServerAdapter interface {
	// Scan sends a raw payload to POST /api/scan. The server classifies and
	// stores it.
	Scan(ctx context.Context, raw string) (models.ResultView, error)

	// Classify sends a raw payload to POST /api/classify without storing it.
	Classify(ctx context.Context, raw string) (models.ResultView, error)

	// Generate builds a payload on the server via POST /api/generate.
	Generate(ctx context.Context, req models.GenerateRequest) (models.GeneratedPayload, error)

	// History lists the server history, newest first, optionally filtered by kind.
	History(ctx context.Context, filter models.HistoryFilter) ([]models.ResultView, error)

	// ClearHistory deletes every server history entry.
	ClearHistory(ctx context.Context) error

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
