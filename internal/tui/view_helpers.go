// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qr-keeper/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	}

	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}

	return appStyle.Render(b.String())
}

// renderResult draws one classified result: title, display value, extracted
// fields and the actions a dispatcher could offer.
func renderResult(v models.ResultView) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(v.Title))
	b.WriteString("\n")
	b.WriteString(fitText(v.Display, 72))

	if len(v.Fields) > 0 {
		b.WriteString("\n")
		width := 0
		for _, f := range v.Fields {
			width = max(width, len(f.Label))
		}
		for _, f := range v.Fields {
			b.WriteString("\n")
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", width, f.Label)))
			b.WriteString("  ")
			b.WriteString(valueOrDash(f.Value))
		}
	}

	if len(v.Actions) > 0 {
		labels := make([]string, 0, len(v.Actions))
		for _, a := range v.Actions {
			labels = append(labels, a.Label)
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("actions: " + strings.Join(labels, ", ")))
	}

	return cardStyle.Render(b.String())
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText shortens v to at most limit runes, marking the cut with "...".
func fitText(v string, limit int) string {
	runes := []rune(v)
	if limit <= 0 || len(runes) <= limit {
		return v
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
