package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qr-keeper/internal/codec"
	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/render"
	"github.com/MKhiriev/go-qr-keeper/internal/validators"
	"github.com/MKhiriev/go-qr-keeper/models"
)

type generateService struct {
	builder   *codec.Builder
	validator validators.Validator
	renderer  render.Renderer

	logger *logger.Logger
}

func NewGenerateService(renderer render.Renderer, cfg config.Codec, logger *logger.Logger) GenerateService {
	var opts []codec.BuilderOption
	if cfg.WiFiEscaping {
		opts = append(opts, codec.WithWiFiEscaping())
	}

	return &generateService{
		builder:   codec.NewBuilder(opts...),
		validator: validators.NewFieldSetValidator(),
		renderer:  renderer,
		logger:    logger,
	}
}

func (g *generateService) Generate(ctx context.Context, req models.GenerateRequest) (models.GeneratedPayload, error) {
	if !req.Kind.Buildable() {
		return models.GeneratedPayload{}, fmt.Errorf("%w: %q", ErrUnsupportedKind, req.Kind)
	}

	fs, err := models.DecodeFieldSet(req.Kind, req.Fields)
	if err != nil {
		if errors.Is(err, models.ErrUnknownKind) {
			return models.GeneratedPayload{}, fmt.Errorf("%w: %w", ErrUnsupportedKind, err)
		}
		return models.GeneratedPayload{}, fmt.Errorf("%w: %w", ErrInvalidFields, err)
	}

	return g.Build(ctx, fs, req.Options)
}

// Build checks that fs carries enough to encode and builds its payload. The
// codec itself never validates, so this is where empty forms are refused.
func (g *generateService) Build(ctx context.Context, fs models.FieldSet, opts models.GenerateOptions) (models.GeneratedPayload, error) {
	log := logger.FromContext(ctx)

	if fs == nil || !fs.Kind().Buildable() {
		return models.GeneratedPayload{}, ErrUnsupportedKind
	}

	if err := g.validator.Validate(ctx, fs); err != nil {
		return models.GeneratedPayload{}, fmt.Errorf("%w: %w", ErrNothingToEncode, err)
	}
	if err := g.validator.Validate(ctx, opts); err != nil {
		return models.GeneratedPayload{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	payload, err := g.builder.Build(fs)
	if err != nil {
		return models.GeneratedPayload{}, fmt.Errorf("%w: %w", ErrUnsupportedKind, err)
	}

	log.Debug().
		Str("func", "generateService.Build").
		Str("kind", fs.Kind().String()).
		Int("payload_length", len(payload)).
		Msg("payload built")

	return models.GeneratedPayload{
		Kind:                 fs.Kind(),
		Payload:              payload,
		ErrorCorrectionLevel: opts.ErrorCorrectionLevel.OrDefault(),
	}, nil
}

func (g *generateService) PNG(ctx context.Context, payload models.GeneratedPayload, size int) ([]byte, error) {
	img, err := g.renderer.PNG(payload.Payload, payload.ErrorCorrectionLevel.OrDefault(), size)
	if err != nil {
		return nil, mapRenderError(err)
	}
	return img, nil
}

func (g *generateService) Terminal(ctx context.Context, payload models.GeneratedPayload) (string, error) {
	out, err := g.renderer.Terminal(payload.Payload, payload.ErrorCorrectionLevel.OrDefault())
	if err != nil {
		return "", mapRenderError(err)
	}
	return out, nil
}

func mapRenderError(err error) error {
	switch {
	case errors.Is(err, render.ErrInvalidSize):
		return fmt.Errorf("%w: %w", ErrInvalidImageSize, err)
	case errors.Is(err, render.ErrEmptyPayload):
		return fmt.Errorf("%w: %w", ErrNothingToEncode, err)
	}
	return fmt.Errorf("error rendering QR code: %w", err)
}
