package config

import "errors"

// Validation errors returned once all sources are merged.
var (
	// ErrInvalidServerConfigs: missing HTTP address or non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs: missing remote address or request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs: non-positive history capacity or empty client DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs: non-positive prune interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
