// Package tool exposes the payload codec to MCP clients: classify_payload
// decodes a raw QR string and build_payload encodes structured fields.
package tool

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerName is the implementation name reported to MCP clients.
const ServerName = "qr-keeper"

var errNoServices = errors.New("scan and generate services are required")

// Tools binds the MCP tool handlers to the application services.
type Tools struct {
	scanner   service.ScanService
	generator service.GenerateService
	logger    *logger.Logger
}

func New(scanner service.ScanService, generator service.GenerateService, log *logger.Logger) (*Tools, error) {
	if scanner == nil || generator == nil {
		return nil, errNoServices
	}
	return &Tools{scanner: scanner, generator: generator, logger: log}, nil
}

// NewServer registers every tool on a fresh MCP server.
func (t *Tools) NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: version}, nil)

	mcp.AddTool(server, MetadataClassifyPayload, t.ClassifyPayload)
	mcp.AddTool(server, MetadataBuildPayload, t.BuildPayload)

	return server
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is done or the
// client disconnects.
func (t *Tools) ServeStdio(ctx context.Context, version string) error {
	t.logger.Info().Str("version", version).Msg("serving MCP tools over stdio")
	return t.NewServer(version).Run(ctx, &mcp.StdioTransport{})
}
