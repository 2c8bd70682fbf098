package tool

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MetadataBuildPayload describes the build_payload tool.
var MetadataBuildPayload = &mcp.Tool{
	Name: "build_payload",
	Description: "Build the canonical QR code payload for structured input. " +
		"Field names per kind: " +
		"wifi: ssid, password, auth (WPA, WEP or nopass), hidden; " +
		"contact: first, last, email, phone, org, title, url, address; " +
		"email: address, subject, body; phone: number; sms: number, message; " +
		"geo: latitude, longitude; url: url; text: text. " +
		"Calendar events cannot be built.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"kind", "fields"},
		"properties": map[string]interface{}{
			"kind": map[string]interface{}{
				"type":        "string",
				"description": "Content kind to build: wifi, contact, email, phone, sms, geo, url or text",
			},
			"fields": map[string]interface{}{
				"type":                 "object",
				"description":          "Field values keyed by field name",
				"additionalProperties": map[string]interface{}{"type": "string"},
			},
			"error_correction_level": map[string]interface{}{
				"type":        "string",
				"description": "QR error correction level handed to the renderer. Defaults to M.",
				"enum":        []string{"L", "M", "Q", "H"},
			},
		},
	},
}

// InputBuildPayload is the input for the BuildPayload tool.
type InputBuildPayload struct {
	Kind                 string            `json:"kind"`
	Fields               map[string]string `json:"fields"`
	ErrorCorrectionLevel string            `json:"error_correction_level,omitempty"`
}

// OutputBuildPayload is the output for the BuildPayload tool.
type OutputBuildPayload struct {
	Kind                 models.ContentKind          `json:"kind"`
	Payload              string                      `json:"payload"`
	ErrorCorrectionLevel models.ErrorCorrectionLevel `json:"error_correction_level"`
}

// BuildPayload validates input.Fields for input.Kind and returns the payload
// that would be rendered into a QR code.
func (t *Tools) BuildPayload(ctx context.Context, _ *mcp.CallToolRequest, input InputBuildPayload) (*mcp.CallToolResult, OutputBuildPayload, error) {
	kind, ok := models.ParseContentKind(input.Kind)
	if !ok || !kind.Buildable() {
		return nil, OutputBuildPayload{}, fmt.Errorf("%w: %q", service.ErrUnsupportedKind, input.Kind)
	}

	fs, err := models.FieldSetFromMap(kind, input.Fields)
	if err != nil {
		return nil, OutputBuildPayload{}, fmt.Errorf("%w: %w", service.ErrUnsupportedKind, err)
	}

	opts := models.GenerateOptions{ErrorCorrectionLevel: models.ErrorCorrectionLevel(input.ErrorCorrectionLevel)}
	generated, err := t.generator.Build(ctx, fs, opts)
	if err != nil {
		return nil, OutputBuildPayload{}, fmt.Errorf("build %s payload: %w", kind, err)
	}

	t.logger.Debug().Str("kind", kind.String()).Msg("build_payload")
	return nil, OutputBuildPayload{
		Kind:                 generated.Kind,
		Payload:              generated.Payload,
		ErrorCorrectionLevel: generated.ErrorCorrectionLevel,
	}, nil
}
