package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-keeper/internal/codec"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/models"
)

type fakeScanner struct {
	scanned []string
	err     error
	nextID  int64
}

func (f *fakeScanner) Scan(_ context.Context, raw string) (models.ResultView, error) {
	if f.err != nil {
		return models.ResultView{}, f.err
	}
	f.scanned = append(f.scanned, raw)
	f.nextID++
	return codec.View(models.ClassifiedResult{ID: f.nextID, Data: raw, Kind: codec.Detect(raw)}), nil
}

func (f *fakeScanner) Classify(_ context.Context, raw string) (models.ResultView, error) {
	return codec.View(models.ClassifiedResult{Data: raw, Kind: codec.Detect(raw)}), nil
}

func init() {
	statusTTL = time.Millisecond
}

func keyPress(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

// submit types raw into the prompt, presses enter and feeds the scan result back.
func submit(t *testing.T, m scanLoopModel, raw string) (scanLoopModel, tea.Cmd) {
	t.Helper()

	m.input.SetValue(raw)
	next, cmd := m.Update(keyPress(tea.KeyEnter))
	m = next.(scanLoopModel)
	require.NotNil(t, cmd)
	assert.True(t, m.scanning)

	next, cmd = m.Update(cmd())
	return next.(scanLoopModel), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew_RequiresScanner(t *testing.T) {
	_, err := New(nil, logger.Nop())
	require.ErrorIs(t, err, errNoScanner)

	ui, err := New(&fakeScanner{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, ui)
}

func TestScanLoop_SingleModeQuitsAfterFirstScan(t *testing.T) {
	scanner := &fakeScanner{}
	m := newScanLoopModel(context.Background(), scanner, false)

	m, cmd := submit(t, m, "WIFI:T:WPA;S:CafeNet;P:letmein;H:false;;")

	assert.True(t, isQuit(cmd))
	assert.False(t, m.quitByUser)
	require.Len(t, m.results, 1)
	assert.Equal(t, models.KindWiFi, m.results[0].Kind)
	assert.Equal(t, []string{"WIFI:T:WPA;S:CafeNet;P:letmein;H:false;;"}, scanner.scanned)
}

func TestScanLoop_ContinuousModeKeepsAccepting(t *testing.T) {
	scanner := &fakeScanner{}
	m := newScanLoopModel(context.Background(), scanner, true)

	m, cmd := submit(t, m, "https://example.com")
	assert.False(t, isQuit(cmd))
	assert.Empty(t, m.input.Value())
	assert.Equal(t, "Scanned url", m.status)

	m, cmd = submit(t, m, "geo:37.7749,-122.4194")
	assert.False(t, isQuit(cmd))

	require.Len(t, m.results, 2)
	assert.Equal(t, models.KindGeo, m.results[1].Kind)
	assert.Contains(t, m.View(), "Geo QR Code Detected")
}

func TestScanLoop_ToggleMode(t *testing.T) {
	m := newScanLoopModel(context.Background(), &fakeScanner{}, false)

	next, _ := m.Update(keyPress(tea.KeyCtrlT))
	m = next.(scanLoopModel)
	assert.True(t, m.continuous)
	assert.Equal(t, "Mode: continuous", m.status)

	// после переключения в непрерывный режим программа не завершается
	m, cmd := submit(t, m, "hello")
	assert.False(t, isQuit(cmd))

	next, _ = m.Update(keyPress(tea.KeyCtrlT))
	m = next.(scanLoopModel)
	assert.False(t, m.continuous)

	_, cmd = submit(t, m, "hello again")
	assert.True(t, isQuit(cmd))
}

func TestScanLoop_BlankInputIsRejectedLocally(t *testing.T) {
	scanner := &fakeScanner{}
	m := newScanLoopModel(context.Background(), scanner, false)
	m.input.SetValue("   ")

	next, cmd := m.Update(keyPress(tea.KeyEnter))
	m = next.(scanLoopModel)

	assert.Nil(t, cmd)
	assert.False(t, m.scanning)
	assert.Equal(t, "Nothing scanned: the payload is empty", m.errMsg)
	assert.Empty(t, scanner.scanned)
}

func TestScanLoop_ScanErrorIsShown(t *testing.T) {
	scanner := &fakeScanner{err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused")}
	m := newScanLoopModel(context.Background(), scanner, false)

	m, cmd := submit(t, m, "hello")

	assert.Nil(t, cmd)
	assert.False(t, m.scanning)
	assert.Empty(t, m.results)
	assert.Equal(t, "Network is down or the server is unreachable", m.errMsg)
	assert.Contains(t, m.View(), m.errMsg)
}

func TestScanLoop_IgnoresEnterWhileScanning(t *testing.T) {
	m := newScanLoopModel(context.Background(), &fakeScanner{}, false)
	m.scanning = true
	m.input.SetValue("hello")

	_, cmd := m.Update(keyPress(tea.KeyEnter))
	assert.Nil(t, cmd)
}

func TestScanLoop_Quit(t *testing.T) {
	for _, kt := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newScanLoopModel(context.Background(), &fakeScanner{}, true)

		next, cmd := m.Update(keyPress(kt))

		assert.True(t, next.(scanLoopModel).quitByUser)
		assert.True(t, isQuit(cmd))
	}
}

func TestScanLoop_CopyLast(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m := newScanLoopModel(context.Background(), &fakeScanner{}, true)

	next, cmd := m.Update(keyPress(tea.KeyCtrlY))
	m = next.(scanLoopModel)
	assert.Nil(t, cmd)
	assert.Equal(t, "Nothing to copy", m.status)

	m, _ = submit(t, m, "mailto:jane@x.com")
	next, cmd = m.Update(keyPress(tea.KeyCtrlY))
	m = next.(scanLoopModel)
	require.NotNil(t, cmd)

	next, _ = m.Update(cmd())
	m = next.(scanLoopModel)
	assert.Equal(t, "jane@x.com", copied)
	assert.Equal(t, "Copied", m.status)
}

func TestScanLoop_CopyFailure(t *testing.T) {
	m := newScanLoopModel(context.Background(), &fakeScanner{}, true)

	next, _ := m.Update(copiedMsg{err: errors.New("no clipboard")})
	assert.Equal(t, "Copy failed: no clipboard", next.(scanLoopModel).errMsg)
}

func TestScanLoop_ClearStatusAndResults(t *testing.T) {
	m := newScanLoopModel(context.Background(), &fakeScanner{}, true)
	m, _ = submit(t, m, "tel:+15551234567")
	require.NotEmpty(t, m.status)

	next, _ := m.Update(clearStatusMsg{})
	m = next.(scanLoopModel)
	assert.Empty(t, m.status)

	next, _ = m.Update(keyPress(tea.KeyCtrlL))
	m = next.(scanLoopModel)
	assert.Empty(t, m.results)
}

func TestScanLoop_TypingGoesToInput(t *testing.T) {
	m := newScanLoopModel(context.Background(), &fakeScanner{}, false)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	assert.Equal(t, "abc", next.(scanLoopModel).input.Value())
}

func TestScanLoop_ViewShowsOnlyRecentResults(t *testing.T) {
	m := newScanLoopModel(context.Background(), &fakeScanner{}, true)
	for _, raw := range []string{"first-old", "https://a.io", "https://b.io", "https://c.io"} {
		m, _ = submit(t, m, raw)
	}

	view := m.View()
	assert.NotContains(t, view, "first-old")
	assert.Contains(t, view, "https://c.io")
	assert.Contains(t, view, "continuous mode, 4 scanned")
}

func TestRenderResult(t *testing.T) {
	v := codec.View(models.ClassifiedResult{
		ID:   1,
		Data: "WIFI:T:WPA;S:CafeNet;P:letmein;H:false;;",
		Kind: models.KindWiFi,
		Fields: []models.Field{
			{Label: codec.LabelSSID, Value: "CafeNet"},
			{Label: codec.LabelPassword, Value: ""},
		},
	})

	out := renderResult(v)
	assert.Contains(t, out, "Wifi QR Code Detected")
	assert.Contains(t, out, "CafeNet")
	assert.NotContains(t, out, "actions:")
}

func TestHumanizeScanError(t *testing.T) {
	assert.Empty(t, humanizeScanError(nil))
	assert.Equal(t, "Nothing scanned: the payload is empty",
		humanizeScanError(errors.Join(errors.New("remote"), service.ErrEmptyPayload)))
	assert.Equal(t, "boom", humanizeScanError(errors.New("boom")))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcd...", fitText("abcdefghij", 7))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "жжж...", fitText("жжжжжжжж", 6))
	assert.Equal(t, "whole", fitText("whole", 0))
}
