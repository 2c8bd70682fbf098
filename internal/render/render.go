// Package render turns payload strings into scannable QR images using
// skip2/go-qrcode. It only maps error-correction levels and sizes; the codec
// never sees pixels.
package render

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/MKhiriev/go-qr-keeper/models"
)

//go:generate mockgen -source=render.go -destination=../mock/render_mock.go -package=mock

const (
	DefaultSize = 256
	MaxSize     = 2048
)

var (
	ErrEmptyPayload = errors.New("nothing to render")
	ErrInvalidSize  = errors.New("image size out of range")
)

// Renderer is the rendering engine the generate service hands payloads to.
type Renderer interface {
	PNG(payload string, level models.ErrorCorrectionLevel, size int) ([]byte, error)
	Terminal(payload string, level models.ErrorCorrectionLevel) (string, error)
}

type QRRenderer struct{}

func NewQRRenderer() *QRRenderer {
	return &QRRenderer{}
}

// PNG renders a size x size image; size 0 means DefaultSize.
func (r *QRRenderer) PNG(payload string, level models.ErrorCorrectionLevel, size int) ([]byte, error) {
	if size == 0 {
		size = DefaultSize
	}
	if size < 0 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	q, err := newCode(payload, level)
	if err != nil {
		return nil, err
	}
	return q.PNG(size)
}

// Terminal renders the code with half-block characters for a text terminal.
func (r *QRRenderer) Terminal(payload string, level models.ErrorCorrectionLevel) (string, error) {
	q, err := newCode(payload, level)
	if err != nil {
		return "", err
	}

	const inverse = false
	return q.ToSmallString(inverse), nil
}

func newCode(payload string, level models.ErrorCorrectionLevel) (*qrcode.QRCode, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}

	q, err := qrcode.New(payload, RecoveryLevel(level))
	if err != nil {
		return nil, fmt.Errorf("QR code error: %w", err)
	}
	return q, nil
}

// RecoveryLevel maps L/M/Q/H onto go-qrcode's levels. Unknown levels fall back
// to the default (M).
func RecoveryLevel(level models.ErrorCorrectionLevel) qrcode.RecoveryLevel {
	switch level.OrDefault() {
	case models.ECLLow:
		return qrcode.Low
	case models.ECLQuartile:
		return qrcode.High
	case models.ECLHigh:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
