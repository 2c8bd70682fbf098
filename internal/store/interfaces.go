// Package store persists the scan history.
//
// The server keeps history in PostgreSQL (pgx) or, without a DSN, in memory;
// the CLI keeps it in a local SQLite file. Both SQL backends share one goose
// schema and squirrel query builders that differ only in placeholder format.
//
// HistoryRepository is the raw table access. HistoryStorage sits on top of it
// and enforces the capacity bound: every append evicts the oldest entries
// (by captured_at, then id) once the bound is exceeded.
package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-qr-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// HistoryRepository is low-level access to the scan_history table. Stored
// results carry no Fields; callers re-derive them from Data and Kind.
type HistoryRepository interface {
	SaveResults(ctx context.Context, results ...models.ClassifiedResult) error
	GetResult(ctx context.Context, id int64) (models.ClassifiedResult, error)
	ListResults(ctx context.Context, filter models.HistoryFilter) ([]models.ClassifiedResult, error)
	DeleteAll(ctx context.Context) error
	// Prune keeps the newest capacity entries and returns how many were evicted.
	Prune(ctx context.Context, capacity int) (int64, error)
	// LastID returns the greatest stored id, or 0 for an empty history.
	LastID(ctx context.Context) (int64, error)
}

// HistoryFileStorage reads and writes the portable JSON history format.
type HistoryFileStorage interface {
	Export(ctx context.Context, w io.Writer, results ...models.ClassifiedResult) error
	Import(ctx context.Context, r io.Reader) ([]models.ClassifiedResult, error)
}

// HistoryStorage is the capacity-bounded history used by the service layer.
type HistoryStorage interface {
	Append(ctx context.Context, results ...models.ClassifiedResult) error
	Get(ctx context.Context, id int64) (models.ClassifiedResult, error)
	List(ctx context.Context, filter models.HistoryFilter) ([]models.ClassifiedResult, error)
	Clear(ctx context.Context) error
	Prune(ctx context.Context) (int64, error)
	LastID(ctx context.Context) (int64, error)
	Export(ctx context.Context, w io.Writer) error
	Import(ctx context.Context, r io.Reader) (int, error)
}
