// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var statusTTL = 3 * time.Second

// visibleResults caps how many past results the continuous view keeps on screen.
const visibleResults = 3

// writeClipboard is swapped in tests; CI machines have no clipboard.
var writeClipboard = clipboard.WriteAll

type scanLoopModel struct {
	ctx     context.Context
	scanner service.ScanService

	input      textinput.Model
	continuous bool
	scanning   bool

	results []models.ResultView
	status  string
	errMsg  string

	quitByUser bool
}

func newScanLoopModel(ctx context.Context, scanner service.ScanService, continuous bool) scanLoopModel {
	in := textinput.New()
	in.Placeholder = "paste or type a decoded QR payload"
	in.Prompt = "> "
	in.CharLimit = 0
	in.Width = 72
	in.Focus()

	return scanLoopModel{
		ctx:        ctx,
		scanner:    scanner,
		input:      in,
		continuous: continuous,
	}
}

func (m scanLoopModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m scanLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scanDoneMsg:
		m.scanning = false
		if msg.err != nil {
			m.errMsg = humanizeScanError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.results = append(m.results, msg.view)
		m.input.Reset()
		if !m.continuous {
			return m, tea.Quit
		}
		m.status = fmt.Sprintf("Scanned %s", msg.view.Kind)
		return m, clearStatusAfter(statusTTL)
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "Copied"
		return m, clearStatusAfter(statusTTL)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m scanLoopModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.toggle):
		m.continuous = !m.continuous
		m.status = "Mode: " + m.modeName()
		return m, clearStatusAfter(statusTTL)
	case key.Matches(msg, keys.copy):
		last, ok := m.last()
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		return m, cmdCopy(last.Display)
	case key.Matches(msg, keys.clear):
		m.results = nil
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.submit):
		if m.scanning {
			return m, nil
		}
		raw := m.input.Value()
		if strings.TrimSpace(raw) == "" {
			m.errMsg = humanizeScanError(service.ErrEmptyPayload)
			return m, nil
		}
		m.scanning = true
		m.errMsg = ""
		return m, m.cmdScan(raw)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m scanLoopModel) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.scanning:
		b.WriteString("\nScanning...\n")
	case m.errMsg != "":
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	// newest first
	shown := 0
	for i := len(m.results) - 1; i >= 0 && shown < visibleResults; i-- {
		b.WriteString("\n")
		b.WriteString(renderResult(m.results[i]))
		b.WriteString("\n")
		shown++
	}

	title := fmt.Sprintf("QR scan (%s mode, %d scanned)", m.modeName(), len(m.results))
	hotKeys := "enter: scan | ctrl+t: toggle mode | ctrl+y: copy last | ctrl+l: clear | esc: quit"
	return renderPage(title, b.String(), hotKeys)
}

func (m scanLoopModel) modeName() string {
	if m.continuous {
		return "continuous"
	}
	return "single"
}

func (m scanLoopModel) last() (models.ResultView, bool) {
	if len(m.results) == 0 {
		return models.ResultView{}, false
	}
	return m.results[len(m.results)-1], true
}

func (m scanLoopModel) cmdScan(raw string) tea.Cmd {
	ctx, scanner := m.ctx, m.scanner
	return func() tea.Msg {
		view, err := scanner.Scan(ctx, raw)
		return scanDoneMsg{view: view, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
