package service

import (
	"context"

	"github.com/MKhiriev/go-qr-keeper/internal/adapter"
	"github.com/MKhiriev/go-qr-keeper/models"
)

type remoteHistoryService struct {
	serverAdapter adapter.ServerAdapter
}

func NewRemoteHistoryService(serverAdapter adapter.ServerAdapter) ClientHistoryService {
	return &remoteHistoryService{serverAdapter: serverAdapter}
}

func (r *remoteHistoryService) List(ctx context.Context, filter models.HistoryFilter) ([]models.ResultView, error) {
	views, err := r.serverAdapter.History(ctx, filter)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return views, nil
}

func (r *remoteHistoryService) Clear(ctx context.Context) error {
	return mapAdapterError(r.serverAdapter.ClearHistory(ctx))
}
