package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-qr-keeper/internal/codec"
	"github.com/MKhiriev/go-qr-keeper/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true)
	actionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func checkOutputFormat(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	}
	return fmt.Errorf("%w: %q", errUnknownOutputFormat, format)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error encoding json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding yaml: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// writeResult prints one classified result as a small card.
func writeResult(w io.Writer, v models.ResultView) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(v.Title))
	b.WriteString("\n  ")
	b.WriteString(v.Display)
	b.WriteString("\n")

	width := 0
	for _, f := range v.Fields {
		width = max(width, len(f.Label))
	}
	for _, f := range v.Fields {
		fmt.Fprintf(&b, "  %s  %s\n", labelStyle.Render(fmt.Sprintf("%-*s", width, f.Label)), f.Value)
	}

	for _, a := range v.Actions {
		target := a.Target
		if a.Type == models.ActionDownload {
			target = a.FileName
		}
		fmt.Fprintf(&b, "  %s %s\n", actionStyle.Render("→ "+a.Label+":"), target)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeHistory prints one line per entry, newest first as received.
func writeHistory(w io.Writer, views []models.ResultView) error {
	if len(views) == 0 {
		_, err := io.WriteString(w, "history is empty\n")
		return err
	}

	var b strings.Builder
	for _, v := range views {
		fmt.Fprintf(&b, "%-15d %-8s %-18s %s\n",
			v.ID, v.Kind, v.CapturedAt.Local().Format(codec.DateLayout), codec.Description(oneLine(v.Data)))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// oneLine folds multi-line payloads (vCards, events) for list output.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
