// Package config loads, merges and validates configuration for the server
// and the CLI.
//
// Sources, in increasing priority (later non-zero fields win):
//  1. built-in defaults
//  2. environment variables
//  3. command-line flags (server only; the CLI's flags are owned by cobra)
//  4. JSON config file
//
// Entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI.
package config
