// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the qr-keeper command line application.
//
// The cobra command tree classifies and generates payloads, runs the
// interactive scan loop, manages the local (or remote) scan history and
// serves the codec as MCP tools. Configuration and services are loaded
// lazily, the first time a command needs them.
package client
