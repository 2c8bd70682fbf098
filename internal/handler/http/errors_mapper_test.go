package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-qr-keeper/internal/app"
	"github.com/MKhiriev/go-qr-keeper/internal/export"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
)

func TestStatusAndMessageFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"empty payload", service.ErrEmptyPayload, http.StatusBadRequest, app.MsgEmptyPayload},
		{"wrapped unsupported kind", fmt.Errorf("%w: %q", service.ErrUnsupportedKind, "calendar"), http.StatusBadRequest, app.MsgUnsupportedKind},
		{"invalid fields", fmt.Errorf("%w: bad json", service.ErrInvalidFields), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"invalid options", service.ErrInvalidOptions, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"invalid image size", service.ErrInvalidImageSize, http.StatusBadRequest, app.MsgInvalidImageSize},
		{"nothing to encode", service.ErrNothingToEncode, http.StatusUnprocessableEntity, app.MsgNothingToEncode},
		{"not found", fmt.Errorf("error getting history entry 1: %w", store.ErrResultNotFound), http.StatusNotFound, app.MsgResultNotFound},
		{"no file export", export.ErrNoFileExport, http.StatusNotFound, app.MsgNoFileExport},
		{"invalid history file", store.ErrInvalidHistoryFile, http.StatusBadRequest, app.MsgInvalidHistoryFile},
		{"bad id", ErrInvalidResultID, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"sql failure", fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("conn reset")), http.StatusInternalServerError, app.MsgInternalServerError},
		{"missing version", service.ErrVersionIsNotSpecified, http.StatusInternalServerError, app.MsgVersionIsNotSpecified},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, messageFromError(tt.err, status))
		})
	}
}
