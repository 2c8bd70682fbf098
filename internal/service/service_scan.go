package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qr-keeper/internal/codec"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
	"github.com/MKhiriev/go-qr-keeper/models"
)

type scanService struct {
	history   store.HistoryStorage
	assembler *codec.Assembler

	logger *logger.Logger
}

type ScanServiceOption func(*scanOptions)

type scanOptions struct {
	ids *utils.IDGenerator
}

// WithIDGenerator makes the scan service draw ids from ids. Share it with
// [WithIDSeeder] so imported entries move the generator forward.
func WithIDGenerator(ids *utils.IDGenerator) ScanServiceOption {
	return func(o *scanOptions) {
		o.ids = ids
	}
}

// NewScanService creates a ScanService whose result ids continue after the
// greatest id already stored in history.
func NewScanService(ctx context.Context, history store.HistoryStorage, logger *logger.Logger, opts ...ScanServiceOption) (ScanService, error) {
	o := scanOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ids == nil {
		o.ids = utils.NewIDGenerator()
	}

	lastID, err := history.LastID(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading last history id: %w", err)
	}
	o.ids.Seed(lastID)

	return &scanService{
		history:   history,
		assembler: codec.NewAssembler(o.ids),
		logger:    logger,
	}, nil
}

func (s *scanService) Scan(ctx context.Context, raw string) (models.ResultView, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(raw) == "" {
		return models.ResultView{}, ErrEmptyPayload
	}

	result := s.assembler.Assemble(raw)
	if err := s.history.Append(ctx, result); err != nil {
		log.Err(err).
			Str("func", "scanService.Scan").
			Int64("id", result.ID).
			Str("kind", result.Kind.String()).
			Msg("error saving scan result")
		return models.ResultView{}, fmt.Errorf("error saving scan result: %w", err)
	}

	log.Debug().
		Str("func", "scanService.Scan").
		Int64("id", result.ID).
		Str("kind", result.Kind.String()).
		Msg("payload scanned")

	return codec.View(result), nil
}

func (s *scanService) Classify(ctx context.Context, raw string) (models.ResultView, error) {
	return codec.View(s.assembler.Assemble(raw)), nil
}
