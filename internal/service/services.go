package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/render"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
)

// Services groups the server-side services handed to the transport layer.
type Services struct {
	ScanService     ScanService
	GenerateService GenerateService
	HistoryService  HistoryService
	AppInfoService  AppInfoService

	HistoryPruneJob HistoryPruneJob
}

func NewServices(ctx context.Context, storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	ids := utils.NewIDGenerator()
	scanService, err := NewScanService(ctx, storages.HistoryStorage, logger, WithIDGenerator(ids))
	if err != nil {
		return nil, fmt.Errorf("error creating scan service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		ScanService:     scanService,
		GenerateService: NewGenerateService(render.NewQRRenderer(), cfg.Codec, logger),
		HistoryService:  NewHistoryService(storages.HistoryStorage, logger, WithIDSeeder(ids)),
		AppInfoService:  appInfoService,
		HistoryPruneJob: NewHistoryPruneJob(storages.HistoryStorage, logger),
	}, nil
}
