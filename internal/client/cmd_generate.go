package client

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

type generateFlags struct {
	sets   []string
	copy   bool
	qr     bool
	png    string
	size   int
	ecl    string
	remote bool
}

func (a *App) generateCommand() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate <kind>",
		Short: "Build the canonical QR payload for structured fields",
		Long: `Build the canonical QR payload for one of:
  wifi     ssid, password, auth (WPA, WEP, nopass), hidden
  contact  first, last, email, phone, org, title, url, address
  email    address, subject, body
  phone    number
  sms      number, message
  geo      latitude, longitude
  url      url
  text     text

Example:
  qr-keeper generate wifi --set ssid=Home --set password=secret123 --qr`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringArrayVar(&flags.sets, "set", nil, "field value as key=value, repeatable")
	cmd.Flags().BoolVar(&flags.copy, "copy", false, "copy the payload to the clipboard")
	cmd.Flags().BoolVar(&flags.qr, "qr", false, "draw the QR code in the terminal (text output only)")
	cmd.Flags().StringVar(&flags.png, "png", "", "write the QR code as a PNG file")
	cmd.Flags().IntVar(&flags.size, "size", 0, "PNG side in pixels (default 256)")
	cmd.Flags().StringVar(&flags.ecl, "ecl", string(models.DefaultErrorCorrectionLevel), "error correction level: L, M, Q or H")
	cmd.Flags().BoolVar(&flags.remote, "remote", false, "build the payload on the configured server")

	return cmd
}

func (a *App) runGenerate(cmd *cobra.Command, kindName string, flags generateFlags) error {
	ctx := cmd.Context()

	kind, ok := models.ParseContentKind(kindName)
	if !ok || !kind.Buildable() {
		return fmt.Errorf("%w: %q", service.ErrUnsupportedKind, kindName)
	}

	values, err := parseSetFlags(flags.sets)
	if err != nil {
		return err
	}

	fs, err := models.FieldSetFromMap(kind, values)
	if err != nil {
		return fmt.Errorf("%w: %w", service.ErrUnsupportedKind, err)
	}

	rt, err := a.load(ctx)
	if err != nil {
		return err
	}

	opts := models.GenerateOptions{ErrorCorrectionLevel: models.ErrorCorrectionLevel(strings.ToUpper(flags.ecl)), Size: flags.size}

	var generated models.GeneratedPayload
	if flags.remote {
		fields, err := json.Marshal(fs)
		if err != nil {
			return fmt.Errorf("error encoding fields: %w", err)
		}
		generated, err = rt.Server.Generate(ctx, models.GenerateRequest{Kind: kind, Fields: fields, Options: opts})
		if err != nil {
			return fmt.Errorf("generate on server: %w", err)
		}
	} else {
		generated, err = rt.Services.GenerateService.Build(ctx, fs, opts)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
	}

	generator := rt.Services.GenerateService

	if flags.png != "" {
		img, err := generator.PNG(ctx, generated, flags.size)
		if err != nil {
			return fmt.Errorf("render png: %w", err)
		}
		if err = os.WriteFile(flags.png, img, 0o644); err != nil {
			return fmt.Errorf("error writing %s: %w", flags.png, err)
		}
		a.logger.Info().Str("file", flags.png).Int("bytes", len(img)).Msg("png written")
	}

	if flags.copy {
		if err = writeClipboard(generated.Payload); err != nil {
			return fmt.Errorf("error copying to clipboard: %w", err)
		}
	}

	var drawing string
	if flags.qr {
		if drawing, err = generator.Terminal(ctx, generated); err != nil {
			return fmt.Errorf("render terminal: %w", err)
		}
	}

	return a.print(cmd.OutOrStdout(), generated, func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, generated.Payload); err != nil {
			return err
		}
		if drawing != "" {
			if _, err := fmt.Fprintln(w, drawing); err != nil {
				return err
			}
		}
		if flags.png != "" {
			if _, err := fmt.Fprintf(w, "saved %s\n", flags.png); err != nil {
				return err
			}
		}
		if flags.copy {
			_, err := fmt.Fprintln(w, "copied to clipboard")
			return err
		}
		return nil
	})
}

// parseSetFlags turns repeated key=value flags into a map. Values may contain
// '='; later keys win.
func parseSetFlags(sets []string) (map[string]string, error) {
	values := make(map[string]string, len(sets))
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", errInvalidSetFlag, s)
		}
		values[key] = value
	}
	return values, nil
}
