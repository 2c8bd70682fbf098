package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/models"
	"github.com/spf13/cobra"
)

var _ Client = (*App)(nil)

type App struct {
	info    models.AppBuildInfo
	factory RuntimeFactory
	logger  *logger.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	output     string

	runtime *Runtime
}

func NewApp(info models.AppBuildInfo, factory RuntimeFactory, log *logger.Logger) (*App, error) {
	if factory == nil {
		return nil, errNoRuntimeFactory
	}

	return &App{
		info:    info,
		factory: factory,
		logger:  log,
		in:      os.Stdin,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}, nil
}

// Run executes args against the command tree. The runtime, if a command
// loaded one, is closed before Run returns.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	defer a.closeRuntime()

	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "qr-keeper",
		Short:         "Classify, generate and keep QR code payloads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return checkOutputFormat(a.output)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a JSON config file")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", outputText, "output format: text, json or yaml")

	root.AddCommand(
		a.classifyCommand(),
		a.generateCommand(),
		a.scanCommand(),
		a.historyCommand(),
		a.mcpCommand(),
		a.versionCommand(),
	)

	return root
}

// load builds the runtime on first use.
func (a *App) load(ctx context.Context) (*Runtime, error) {
	if a.runtime != nil {
		return a.runtime, nil
	}

	rt, err := a.factory(ctx, a.configPath)
	if err != nil {
		return nil, err
	}
	if rt == nil || rt.Services == nil {
		return nil, errNoRuntime
	}

	a.runtime = rt
	return rt, nil
}

func (a *App) closeRuntime() {
	if a.runtime == nil || a.runtime.Close == nil {
		return
	}
	if err := a.runtime.Close(); err != nil {
		a.logger.Err(err).Msg("error closing local storage")
	}
	a.runtime = nil
}

func (a *App) scanner(rt *Runtime, remote bool) service.ScanService {
	if remote {
		return rt.Services.RemoteScanService
	}
	return rt.Services.ScanService
}

func (a *App) version() string {
	if v := a.info.BuildVersion(); v != "" {
		return v
	}
	return "dev"
}

// print writes v in the selected output format; text falls back to render.
func (a *App) print(w io.Writer, v any, render func(io.Writer) error) error {
	switch a.output {
	case outputJSON:
		return writeJSON(w, v)
	case outputYAML:
		return writeYAML(w, v)
	}

	if err := render(w); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
