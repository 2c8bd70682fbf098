package client

import (
	"github.com/MKhiriev/go-qr-keeper/internal/tool"
	"github.com/spf13/cobra"
)

func (a *App) mcpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve classify_payload and build_payload as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			tools, err := tool.New(rt.Services.ScanService, rt.Services.GenerateService, a.logger)
			if err != nil {
				return err
			}

			return tools.ServeStdio(cmd.Context(), a.version())
		},
	}
}
