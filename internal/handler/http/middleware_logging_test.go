package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
)

// makeRequest puts a buffer-backed logger into the request context the same
// way withTraceID does.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET history 200",
			method:          http.MethodGet,
			path:            "/api/history?kind=wifi",
			handlerStatus:   http.StatusOK,
			handlerResponse: "[]",
			checkLogContains: []string{
				`"level":"info"`,
				`"method":"GET"`,
				`"uri":"/api/history?kind=wifi"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "POST scan 201",
			method:          http.MethodPost,
			path:            "/api/scan",
			handlerStatus:   http.StatusCreated,
			handlerResponse: `{"id":1}`,
			checkLogContains: []string{
				`"level":"info"`,
				`"method":"POST"`,
				`"status":201`,
				`"size":8`,
			},
		},
		{
			name:            "client error is logged as warn",
			method:          http.MethodPost,
			path:            "/api/scan",
			handlerStatus:   http.StatusBadRequest,
			handlerResponse: "empty payload\n",
			checkLogContains: []string{
				`"level":"warn"`,
				`"status":400`,
			},
		},
		{
			name:            "server error is logged as error",
			method:          http.MethodGet,
			path:            "/api/history/",
			handlerStatus:   http.StatusInternalServerError,
			handlerResponse: "internal server error\n",
			checkLogContains: []string{
				`"level":"error"`,
				`"status":500`,
			},
		},
		{
			name:          "no body",
			method:        http.MethodDelete,
			path:          "/api/history/",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"method":"DELETE"`,
				`"status":204`,
				`"size":0`,
			},
		},
	}

	h := &Handler{logger: logger.Nop()}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			logOutput := logBuf.String()
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logOutput, expected, "log should contain: %s", expected)
			}
		})
	}
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1000)))
		_, _ = w.Write([]byte(strings.Repeat("b", 24)))
	})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/api/history/export.csv", &logBuf))

	assert.Contains(t, logBuf.String(), `"size":1024`)
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var logBuf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/api/version/", &logBuf))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/panic", &logBuf))
	}, "withLogging should not recover panics")
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusNoContent))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusNotFound))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusUnprocessableEntity))
	assert.Equal(t, zerolog.ErrorLevel, accessLogLevel(http.StatusServiceUnavailable))
}
