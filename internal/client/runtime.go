package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-keeper/internal/adapter"
	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
)

// Runtime is what the commands work with once configuration is loaded.
type Runtime struct {
	Services *service.ClientServices
	Server   adapter.ServerAdapter

	// Close releases the local history database.
	Close func() error
}

// RuntimeFactory loads configuration from configPath (may be empty) and
// builds the runtime.
type RuntimeFactory func(ctx context.Context, configPath string) (*Runtime, error)

// NewRuntimeFactory returns the production factory: SQLite history, resty
// server adapter and the client services on top of them.
func NewRuntimeFactory(log *logger.Logger) RuntimeFactory {
	return func(ctx context.Context, configPath string) (*Runtime, error) {
		cfg, err := config.GetClientConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("error getting configs: %w", err)
		}
		logger.SetLevel(cfg.App.LogLevel)
		log.Debug().Any("config", cfg).Msg("received configs")

		localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
		if err != nil {
			return nil, fmt.Errorf("create local storage: %w", err)
		}

		serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
		if err != nil {
			localStorage.Close()
			return nil, fmt.Errorf("create server adapter: %w", err)
		}

		services, err := service.NewClientServices(ctx, localStorage, serverAdapter, cfg, log)
		if err != nil {
			localStorage.Close()
			return nil, fmt.Errorf("create client services: %w", err)
		}

		return &Runtime{Services: services, Server: serverAdapter, Close: localStorage.Close}, nil
	}
}
