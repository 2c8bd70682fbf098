// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Scan / Classify ─────────────────────────────────────────────────────────

func TestScan_Success(t *testing.T) {
	want := models.ResultView{
		ClassifiedResult: models.ClassifiedResult{ID: 7, Data: "geo:1,2", Kind: models.KindGeo},
		Title:            "Geo QR Code Detected",
		Display:          "1,2",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/scan", r.URL.Path)

		var req models.ScanRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "geo:1,2", req.Data)

		writeJSON(t, w, http.StatusCreated, want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Scan(context.Background(), "geo:1,2")

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Kind, got.Kind)
	assert.Equal(t, want.Display, got.Display)
}

func TestScan_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "empty payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Scan(context.Background(), "  ")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "bad request: empty payload", err.Error())
}

func TestClassify_UsesClassifyRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/classify", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.ResultView{
			ClassifiedResult: models.ClassifiedResult{Data: "hello", Kind: models.KindText},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Classify(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, models.KindText, got.Kind)
}

func TestClassify_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Classify(context.Background(), "hello")
	require.Error(t, err)
}

// ── Generate ────────────────────────────────────────────────────────────────

func TestGenerate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req models.GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.KindURL, req.Kind)
		assert.JSONEq(t, `{"url":"google.com"}`, string(req.Fields))

		writeJSON(t, w, http.StatusOK, models.GeneratedPayload{
			Kind: models.KindURL, Payload: "https://google.com", ErrorCorrectionLevel: models.ECLMedium,
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Generate(context.Background(), models.GenerateRequest{
		Kind:   models.KindURL,
		Fields: json.RawMessage(`{"url":"google.com"}`),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://google.com", got.Payload)
	assert.Equal(t, models.ECLMedium, got.ErrorCorrectionLevel)
}

func TestGenerate_Unprocessable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nothing to encode", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Generate(context.Background(), models.GenerateRequest{Kind: models.KindWiFi})

	assert.ErrorIs(t, err, ErrUnprocessable)
}

// ── History ─────────────────────────────────────────────────────────────────

func TestHistory_PassesFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/history", r.URL.Path)
		assert.Equal(t, "wifi", r.URL.Query().Get("kind"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		writeJSON(t, w, http.StatusOK, []models.ResultView{
			{ClassifiedResult: models.ClassifiedResult{ID: 2, Kind: models.KindWiFi}},
			{ClassifiedResult: models.ClassifiedResult{ID: 1, Kind: models.KindWiFi}},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).History(context.Background(), models.HistoryFilter{Kind: models.KindWiFi, Limit: 5})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestHistory_NoFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		writeJSON(t, w, http.StatusOK, []models.ResultView{})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).History(context.Background(), models.HistoryFilter{})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClearHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/history", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).ClearHistory(context.Background()))
}

func TestClearHistory_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).ClearHistory(context.Background())
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestVersion_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"https kept", " https://qr.example.com ", "https://qr.example.com", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "   "}, logger.Nop())
	require.Error(t, err)
}
