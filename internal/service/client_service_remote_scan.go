package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-qr-keeper/internal/adapter"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// remoteScanService forwards scans to a qr-keeper server, which classifies
// and stores them in its own history.
type remoteScanService struct {
	serverAdapter adapter.ServerAdapter
}

func NewRemoteScanService(serverAdapter adapter.ServerAdapter) ScanService {
	return &remoteScanService{serverAdapter: serverAdapter}
}

func (r *remoteScanService) Scan(ctx context.Context, raw string) (models.ResultView, error) {
	if strings.TrimSpace(raw) == "" {
		return models.ResultView{}, ErrEmptyPayload
	}

	view, err := r.serverAdapter.Scan(ctx, raw)
	if err != nil {
		return models.ResultView{}, mapAdapterError(err)
	}
	return view, nil
}

func (r *remoteScanService) Classify(ctx context.Context, raw string) (models.ResultView, error) {
	view, err := r.serverAdapter.Classify(ctx, raw)
	if err != nil {
		return models.ResultView{}, mapAdapterError(err)
	}
	return view, nil
}
