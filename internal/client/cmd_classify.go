package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) classifyCommand() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "classify [payload]",
		Short: "Classify a decoded QR payload without storing it",
		Long: `Classify a decoded QR payload and print its type, extracted fields and actions.

Without an argument the payload is read from stdin, so multi-line vCards and
calendar events can be piped in. Nothing is added to the history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := payloadFrom(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			rt, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			view, err := a.scanner(rt, remote).Classify(cmd.Context(), raw)
			if err != nil {
				return fmt.Errorf("classify: %w", err)
			}

			return a.print(cmd.OutOrStdout(), view, func(w io.Writer) error {
				return writeResult(w, view)
			})
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "classify on the configured server")

	return cmd
}

// payloadFrom returns the single argument, or stdin minus one trailing
// newline when there is none.
func payloadFrom(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}

	raw := string(data)
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")
	return raw, nil
}
