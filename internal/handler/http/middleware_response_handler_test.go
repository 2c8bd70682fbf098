package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name           string
		statusCodes    []int
		expectedStatus int
	}{
		{
			name:           "201 Created",
			statusCodes:    []int{http.StatusCreated},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "422 Unprocessable Entity",
			statusCodes:    []int{http.StatusUnprocessableEntity},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "double call, first wins",
			statusCodes:    []int{http.StatusNoContent, http.StatusInternalServerError},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.expectedStatus, w.status)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Zero(t, w.status)

	n, err := w.Write([]byte("Type,Data"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	_, err = w.Write([]byte(",Timestamp\n"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 20, w.size)
	assert.Equal(t, "Type,Data,Timestamp\n", rr.Body.String())
}

func TestResponseWriter_ProxiesHeadersAndUnwraps(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Header().Set("X-Trace-ID", "abc")

	assert.Equal(t, "abc", rr.Header().Get("X-Trace-ID"))
	assert.Same(t, rr, w.Unwrap())
}
