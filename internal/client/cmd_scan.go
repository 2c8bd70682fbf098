package client

import (
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-qr-keeper/internal/tui"
	"github.com/MKhiriev/go-qr-keeper/models"
	"github.com/spf13/cobra"
)

func (a *App) scanCommand() *cobra.Command {
	var (
		continuous bool
		remote     bool
	)

	cmd := &cobra.Command{
		Use:   "scan [payload...]",
		Short: "Scan payloads into the history",
		Long: `Classify payloads and add them to the history.

With arguments every argument is scanned once. Without arguments an
interactive prompt accepts decoded payloads: in single mode it exits after
the first successful scan, in continuous mode it keeps accepting until esc.
ctrl+t switches between the two.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rt, err := a.load(ctx)
			if err != nil {
				return err
			}
			scanner := a.scanner(rt, remote)

			var results []models.ResultView
			if len(args) > 0 {
				for _, raw := range args {
					view, err := scanner.Scan(ctx, raw)
					if err != nil {
						return fmt.Errorf("scan %q: %w", raw, err)
					}
					results = append(results, view)
				}
			} else {
				ui, err := tui.New(scanner, a.logger)
				if err != nil {
					return err
				}
				results, err = ui.ScanLoop(ctx, continuous)
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				if err != nil {
					return fmt.Errorf("scan loop: %w", err)
				}
			}

			return a.print(cmd.OutOrStdout(), results, func(w io.Writer) error {
				for _, view := range results {
					if err := writeResult(w, view); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&continuous, "continuous", false, "keep scanning after the first result")
	cmd.Flags().BoolVar(&remote, "remote", false, "scan into the configured server's history")

	return cmd
}
