package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-qr-keeper/internal/codec"
	"github.com/MKhiriev/go-qr-keeper/internal/export"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// IDSeeder moves an id source past ids that are already taken.
type IDSeeder interface {
	Seed(id int64)
}

type historyService struct {
	history store.HistoryStorage
	seeder  IDSeeder

	logger *logger.Logger
}

type HistoryServiceOption func(*historyService)

// WithIDSeeder re-seeds seeder with the greatest stored id after every
// import, so later scans never reuse an imported id.
func WithIDSeeder(seeder IDSeeder) HistoryServiceOption {
	return func(h *historyService) {
		h.seeder = seeder
	}
}

func NewHistoryService(history store.HistoryStorage, logger *logger.Logger, opts ...HistoryServiceOption) HistoryService {
	h := &historyService{
		history: history,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *historyService) List(ctx context.Context, filter models.HistoryFilter) ([]models.ResultView, error) {
	results, err := h.history.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing history: %w", err)
	}

	views := make([]models.ResultView, 0, len(results))
	for _, r := range results {
		views = append(views, codec.View(r))
	}
	return views, nil
}

func (h *historyService) Get(ctx context.Context, id int64) (models.ResultView, error) {
	r, err := h.history.Get(ctx, id)
	if err != nil {
		return models.ResultView{}, fmt.Errorf("error getting history entry %d: %w", id, err)
	}
	return codec.View(r), nil
}

func (h *historyService) Clear(ctx context.Context) error {
	if err := h.history.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing history: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "historyService.Clear").Msg("history cleared")
	return nil
}

func (h *historyService) ExportCSV(ctx context.Context, w io.Writer) error {
	results, err := h.history.List(ctx, models.HistoryFilter{})
	if err != nil {
		return fmt.Errorf("error listing history: %w", err)
	}
	return export.WriteCSV(w, results)
}

func (h *historyService) ExportJSON(ctx context.Context, w io.Writer) error {
	return h.history.Export(ctx, w)
}

func (h *historyService) ImportJSON(ctx context.Context, r io.Reader) (int, error) {
	n, err := h.history.Import(ctx, r)
	if err != nil {
		return 0, err
	}

	if h.seeder != nil {
		lastID, err := h.history.LastID(ctx)
		if err != nil {
			return n, fmt.Errorf("error reading last history id: %w", err)
		}
		h.seeder.Seed(lastID)
	}

	logger.FromContext(ctx).Info().
		Str("func", "historyService.ImportJSON").
		Int("entries", n).
		Msg("history imported")
	return n, nil
}

func (h *historyService) File(ctx context.Context, id int64) (export.File, error) {
	r, err := h.history.Get(ctx, id)
	if err != nil {
		return export.File{}, fmt.Errorf("error getting history entry %d: %w", id, err)
	}
	return export.FileFor(r)
}
