package tool

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-keeper/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MetadataClassifyPayload describes the classify_payload tool.
var MetadataClassifyPayload = &mcp.Tool{
	Name: "classify_payload",
	Description: "Classify a decoded QR code payload. " +
		"Returns the content type (url, text, wifi, contact, email, phone, sms, geo, calendar), " +
		"a human-readable title and display value, the labelled fields extracted from the payload " +
		"and the actions a client could offer (open a URL, download a .vcf or .ics file). " +
		"Nothing is stored.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"payload"},
		"properties": map[string]interface{}{
			"payload": map[string]interface{}{
				"type":        "string",
				"description": "The exact string decoded from the QR code",
			},
		},
	},
}

// InputClassifyPayload is the input for the ClassifyPayload tool.
type InputClassifyPayload struct {
	Payload string `json:"payload"`
}

// OutputClassifyPayload is the output for the ClassifyPayload tool.
type OutputClassifyPayload struct {
	Type        models.ContentKind `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Display     string             `json:"display"`
	Fields      []models.Field     `json:"fields"`
	Actions     []models.Action    `json:"actions"`
}

// ClassifyPayload classifies input.Payload without adding it to the history.
// A blank payload classifies as text.
func (t *Tools) ClassifyPayload(ctx context.Context, _ *mcp.CallToolRequest, input InputClassifyPayload) (*mcp.CallToolResult, OutputClassifyPayload, error) {
	view, err := t.scanner.Classify(ctx, input.Payload)
	if err != nil {
		return nil, OutputClassifyPayload{}, fmt.Errorf("classify payload: %w", err)
	}

	out := OutputClassifyPayload{
		Type:        view.Kind,
		Title:       view.Title,
		Description: view.Description,
		Display:     view.Display,
		Fields:      view.Fields,
		Actions:     view.Actions,
	}
	if out.Fields == nil {
		out.Fields = []models.Field{}
	}
	if out.Actions == nil {
		out.Actions = []models.Action{}
	}

	t.logger.Debug().Str("type", out.Type.String()).Msg("classify_payload")
	return nil, out, nil
}
