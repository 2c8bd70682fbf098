// Package tui implements the interactive terminal scan loop. Decoded payloads
// are typed or pasted into a prompt (the stand-in capture provider), handed to
// a ScanService, and the classified results are rendered as cards.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	scanner service.ScanService
	logger  *logger.Logger
}

func New(scanner service.ScanService, log *logger.Logger) (*TUI, error) {
	if scanner == nil {
		return nil, errNoScanner
	}
	return &TUI{scanner: scanner, logger: log}, nil
}

// ScanLoop runs the scan prompt until the user quits or, in single mode, until
// the first successful scan. It returns every result scanned in the session.
// Quitting before any scan succeeded yields ErrUserQuit.
func (t *TUI) ScanLoop(ctx context.Context, continuous bool) ([]models.ResultView, error) {
	model := newScanLoopModel(ctx, t.scanner, continuous)
	finalModel, runErr := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if runErr != nil {
		return nil, runErr
	}

	result, ok := finalModel.(scanLoopModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser && len(result.results) == 0 {
		return nil, ErrUserQuit
	}

	t.logger.Debug().Int("scanned", len(result.results)).Bool("continuous", result.continuous).Msg("scan loop finished")
	return result.results, nil
}
