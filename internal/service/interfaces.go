// Package service holds the application use cases: scanning (classify and
// store), generating payloads and QR images, and browsing the scan history.
// Services glue the pure codec to storage, the renderer and the exporters.
package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-qr-keeper/internal/export"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// ScanService turns raw payloads supplied by a capture provider into results.
type ScanService interface {
	// Scan classifies raw and appends the result to the history. Blank input
	// is rejected with ErrEmptyPayload.
	Scan(ctx context.Context, raw string) (models.ResultView, error)

	// Classify classifies raw without storing it. Blank input classifies as text.
	Classify(ctx context.Context, raw string) (models.ResultView, error)
}

// GenerateService builds canonical payloads from structured input and hands
// them to the rendering engine.
type GenerateService interface {
	// Generate decodes the request's fields for its kind and builds the payload.
	Generate(ctx context.Context, req models.GenerateRequest) (models.GeneratedPayload, error)

	// Build validates fs and builds its payload.
	Build(ctx context.Context, fs models.FieldSet, opts models.GenerateOptions) (models.GeneratedPayload, error)

	// PNG renders a generated payload as a size x size image; 0 means the default size.
	PNG(ctx context.Context, payload models.GeneratedPayload, size int) ([]byte, error)

	// Terminal renders a generated payload as block characters.
	Terminal(ctx context.Context, payload models.GeneratedPayload) (string, error)
}

// HistoryService exposes the stored scan history.
type HistoryService interface {
	List(ctx context.Context, filter models.HistoryFilter) ([]models.ResultView, error)
	Get(ctx context.Context, id int64) (models.ResultView, error)
	Clear(ctx context.Context) error

	// ExportCSV writes the whole history, newest first, as Type,Data,Timestamp rows.
	ExportCSV(ctx context.Context, w io.Writer) error
	// ExportJSON writes the portable JSON history format.
	ExportJSON(ctx context.Context, w io.Writer) error
	// ImportJSON merges a JSON history file and returns how many entries it held.
	ImportJSON(ctx context.Context, r io.Reader) (int, error)

	// File returns the vCard or iCalendar file of one entry.
	File(ctx context.Context, id int64) (export.File, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HistoryPruneJob periodically enforces the history capacity.
type HistoryPruneJob interface {
	// Start launches the background goroutine. It prunes every interval,
	// defaulting to one minute if interval is zero or negative. Any previously
	// running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// terminated.
	Stop()
}
