package client

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/models"
	"github.com/spf13/cobra"
)

const (
	exportCSV  = "csv"
	exportJSON = "json"
)

func (a *App) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse and manage the scan history",
	}

	cmd.AddCommand(
		a.historyListCommand(),
		a.historyClearCommand(),
		a.historyExportCommand(),
		a.historyImportCommand(),
		a.historyFileCommand(),
	)

	return cmd
}

func (a *App) historySource(rt *Runtime, remote bool) service.ClientHistoryService {
	if remote {
		return rt.Services.RemoteHistoryService
	}
	return rt.Services.HistoryService
}

func (a *App) historyListCommand() *cobra.Command {
	var (
		kindName string
		limit    int
		remote   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List history entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := models.HistoryFilter{Limit: limit}
			if kindName != "" {
				kind, ok := models.ParseContentKind(kindName)
				if !ok {
					return fmt.Errorf("%w: %q", service.ErrUnsupportedKind, kindName)
				}
				filter.Kind = kind
			}

			rt, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			views, err := a.historySource(rt, remote).List(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("list history: %w", err)
			}
			if views == nil {
				views = []models.ResultView{}
			}

			return a.print(cmd.OutOrStdout(), views, func(w io.Writer) error {
				return writeHistory(w, views)
			})
		},
	}

	cmd.Flags().StringVar(&kindName, "kind", "", "only entries of this type")
	cmd.Flags().IntVar(&limit, "limit", 0, "at most this many entries (0 means all)")
	cmd.Flags().BoolVar(&remote, "remote", false, "list the configured server's history")

	return cmd
}

func (a *App) historyClearCommand() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every history entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			if err = a.historySource(rt, remote).Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return err
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "clear the configured server's history")

	return cmd
}

func (a *App) historyExportCommand() *cobra.Command {
	var (
		format string
		file   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the local history as CSV or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != exportCSV && format != exportJSON {
				return fmt.Errorf("%w: %q", errUnknownExportFormat, format)
			}

			rt, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			history := rt.Services.HistoryService

			w := cmd.OutOrStdout()
			if file != "" {
				f, err := os.Create(file)
				if err != nil {
					return fmt.Errorf("error creating %s: %w", file, err)
				}
				defer f.Close()
				w = f
			}

			if format == exportCSV {
				err = history.ExportCSV(cmd.Context(), w)
			} else {
				err = history.ExportJSON(cmd.Context(), w)
			}
			if err != nil {
				return fmt.Errorf("export history: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", exportCSV, "csv or json")
	cmd.Flags().StringVar(&file, "file", "", "write to this file instead of stdout")

	return cmd
}

func (a *App) historyImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Merge a JSON history export into the local history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("error opening %s: %w", args[0], err)
			}
			defer f.Close()

			rt, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			n, err := rt.Services.HistoryService.ImportJSON(cmd.Context(), f)
			if err != nil {
				return fmt.Errorf("import history: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries\n", n)
			return err
		},
	}
}

func (a *App) historyFileCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "file <id>",
		Short: "Save the vCard or iCalendar file of one local entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("%w: %q", errInvalidHistoryID, args[0])
			}

			rt, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			export, err := rt.Services.HistoryService.File(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("history file: %w", err)
			}

			path := file
			if path == "" {
				path = export.Name
			}
			if err = os.WriteFile(path, export.Body, 0o644); err != nil {
				return fmt.Errorf("error writing %s: %w", path, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s)\n", path, export.ContentType)
			return err
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "target path (default: contact.vcf or event.ics)")

	return cmd
}
