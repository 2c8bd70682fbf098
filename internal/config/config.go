// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merged configuration of the qr-keeper binaries.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env:       variable name for scalar fields.
type StructuredConfig struct {
	App App `envPrefix:"APP_"`

	Storage Storage `envPrefix:"STORAGE_"`

	Server Server `envPrefix:"SERVER_"`

	// Adapter is used by the CLI when it talks to a remote server (--remote).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	Workers Workers `envPrefix:"WORKERS_"`

	Codec Codec `envPrefix:"CODEC_"`

	// JSONFilePath points to an optional JSON file merged last.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

type App struct {
	// Version is served by GET /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

type Storage struct {
	DB DB `envPrefix:"DB_"`

	History History `envPrefix:"HISTORY_"`
}

type DB struct {
	// DSN is a PostgreSQL URL on the server and a SQLite file path on the client.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

type History struct {
	// Capacity is the number of scans kept before the oldest are evicted.
	// Env: STORAGE_HISTORY_CAPACITY
	Capacity int `env:"CAPACITY"`
}

type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

type Adapter struct {
	// HTTPAddress of the remote server, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

type Workers struct {
	// PruneInterval is how often the history pruner enforces Capacity.
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`
}

type Codec struct {
	// WiFiEscaping turns on backslash escaping of WiFi SSIDs and passwords.
	// Env: CODEC_WIFI_ESCAPING
	WiFiEscaping bool `env:"WIFI_ESCAPING"`
}

// Defaults applied before any other source.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultGRPCAddress     = "localhost:9090"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultHistoryCapacity = 100
	DefaultPruneInterval   = time.Minute
	DefaultClientDSN       = "qr-keeper.db"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			GRPCAddress:    DefaultGRPCAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			History: History{Capacity: DefaultHistoryCapacity},
		},
		Workers: Workers{PruneInterval: DefaultPruneInterval},
	}
}

// GetStructuredConfig loads the server configuration. Sources are applied in
// order, each overriding the non-zero fields of the previous ones:
//  1. defaults
//  2. environment variables
//  3. command-line flags
//  4. JSON file (path taken from 2 or 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(nil).
		withJSON().
		build()
}
