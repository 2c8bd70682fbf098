package config

import (
	"fmt"
	"time"
)

type ClientApp struct {
	LogLevel string
}

// ClientAdapter addresses the remote server used by `scan --remote`.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

type ClientDB struct {
	// DSN is the SQLite file holding the local scan history.
	DSN string
}

type ClientStorage struct {
	DB      ClientDB
	History History
}

// ClientConfig is the CLI's view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Codec   Codec
}

// GetClientConfig loads defaults, environment and the optional JSON file at
// jsonPath. Command-line flags belong to cobra and are applied by the caller.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withClientDefaults().
		withEnv().
		withJSONPath(jsonPath).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{LogLevel: cfg.App.LogLevel},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:      ClientDB{DSN: cfg.Storage.DB.DSN},
			History: cfg.Storage.History,
		},
		Codec: cfg.Codec,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
