package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
	"github.com/MKhiriev/go-qr-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises adapterCfg.HTTPAddress (adding http:// when no scheme is
// given) and applies the request timeout.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Scan(ctx context.Context, raw string) (models.ResultView, error) {
	return h.postPayload(ctx, "/api/scan", raw)
}

func (h *httpServerAdapter) Classify(ctx context.Context, raw string) (models.ResultView, error) {
	return h.postPayload(ctx, "/api/classify", raw)
}

func (h *httpServerAdapter) postPayload(ctx context.Context, path, raw string) (models.ResultView, error) {
	var view models.ResultView

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ScanRequest{Data: raw}).
		SetResult(&view).
		Post(path)
	if err != nil {
		return models.ResultView{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ResultView{}, err
	}

	return view, nil
}

func (h *httpServerAdapter) Generate(ctx context.Context, req models.GenerateRequest) (models.GeneratedPayload, error) {
	var payload models.GeneratedPayload

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&payload).
		Post("/api/generate")
	if err != nil {
		return models.GeneratedPayload{}, fmt.Errorf("generate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GeneratedPayload{}, err
	}

	return payload, nil
}

func (h *httpServerAdapter) History(ctx context.Context, filter models.HistoryFilter) ([]models.ResultView, error) {
	var views []models.ResultView

	req := h.client.R().SetContext(ctx).SetResult(&views)
	if filter.Kind != "" {
		req.SetQueryParam("kind", filter.Kind.String())
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(filter.Limit))
	}

	resp, err := req.Get("/api/history")
	if err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return views, nil
}

func (h *httpServerAdapter) ClearHistory(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Delete("/api/history")
	if err != nil {
		return fmt.Errorf("clear history request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
