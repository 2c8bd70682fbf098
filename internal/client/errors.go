package client

import "errors"

var (
	errNoRuntimeFactory    = errors.New("runtime factory is not set")
	errNoRuntime           = errors.New("runtime factory returned no services")
	errUnknownOutputFormat = errors.New("unknown output format")
	errUnknownExportFormat = errors.New("unknown export format")
	errInvalidSetFlag      = errors.New("--set expects key=value")
	errInvalidHistoryID    = errors.New("history id must be a positive integer")
)
