package client

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type versionOutput struct {
	Version       string `json:"version" yaml:"version"`
	Date          string `json:"date,omitempty" yaml:"date,omitempty"`
	Commit        string `json:"commit,omitempty" yaml:"commit,omitempty"`
	ServerVersion string `json:"serverVersion,omitempty" yaml:"serverVersion,omitempty"`
}

func (a *App) versionCommand() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := versionOutput{
				Version: a.version(),
				Date:    a.info.BuildDate(),
				Commit:  a.info.BuildCommit(),
			}

			if remote {
				rt, err := a.load(cmd.Context())
				if err != nil {
					return err
				}
				if out.ServerVersion, err = rt.Server.Version(cmd.Context()); err != nil {
					return fmt.Errorf("server version: %w", err)
				}
			}

			return a.print(cmd.OutOrStdout(), out, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "qr-keeper %s\n", a.info); err != nil {
					return err
				}
				if out.ServerVersion != "" {
					_, err := fmt.Fprintf(w, "server %s\n", out.ServerVersion)
					return err
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "also ask the configured server for its version")

	return cmd
}
