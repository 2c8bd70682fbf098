package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-keeper/internal/adapter"
	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/render"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
)

// ClientServices groups the CLI services. Local services work against the
// SQLite history; Remote* services go through the server adapter.
type ClientServices struct {
	ScanService     ScanService
	GenerateService GenerateService
	HistoryService  HistoryService

	RemoteScanService    ScanService
	RemoteHistoryService ClientHistoryService
}

func NewClientServices(
	ctx context.Context,
	localStore *store.Storages,
	serverAdapter adapter.ServerAdapter,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) (*ClientServices, error) {
	ids := utils.NewIDGenerator()
	scanSvc, err := NewScanService(ctx, localStore.HistoryStorage, logger, WithIDGenerator(ids))
	if err != nil {
		return nil, fmt.Errorf("error creating scan service: %w", err)
	}

	return &ClientServices{
		ScanService:          scanSvc,
		GenerateService:      NewGenerateService(render.NewQRRenderer(), cfg.Codec, logger),
		HistoryService:       NewHistoryService(localStore.HistoryStorage, logger, WithIDSeeder(ids)),
		RemoteScanService:    NewRemoteScanService(serverAdapter),
		RemoteHistoryService: NewRemoteHistoryService(serverAdapter),
	}, nil
}
