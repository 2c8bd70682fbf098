package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-qr-keeper/internal/app"
	"github.com/MKhiriev/go-qr-keeper/internal/export"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidResultID:  http.StatusBadRequest,
	ErrInvalidSizeParam: http.StatusBadRequest,
	ErrInvalidLimit:     http.StatusBadRequest,
	ErrInvalidKind:      http.StatusBadRequest,

	service.ErrEmptyPayload:          http.StatusBadRequest,
	service.ErrUnsupportedKind:       http.StatusBadRequest,
	service.ErrInvalidFields:         http.StatusBadRequest,
	service.ErrInvalidOptions:        http.StatusBadRequest,
	service.ErrInvalidImageSize:      http.StatusBadRequest,
	service.ErrNothingToEncode:       http.StatusUnprocessableEntity,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	export.ErrNoFileExport: http.StatusNotFound,

	store.ErrResultNotFound:     http.StatusNotFound,
	store.ErrInvalidHistoryFile: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap holds the response body for errors the remote client
// must be able to tell apart. Everything else gets a generic message.
var errorMessageMap = map[error]string{
	service.ErrEmptyPayload:          app.MsgEmptyPayload,
	service.ErrUnsupportedKind:       app.MsgUnsupportedKind,
	service.ErrInvalidImageSize:      app.MsgInvalidImageSize,
	service.ErrNothingToEncode:       app.MsgNothingToEncode,
	service.ErrVersionIsNotSpecified: app.MsgVersionIsNotSpecified,
	export.ErrNoFileExport:           app.MsgNoFileExport,
	store.ErrResultNotFound:          app.MsgResultNotFound,
	store.ErrInvalidHistoryFile:      app.MsgInvalidHistoryFile,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	if status >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	return app.MsgInvalidDataProvided
}

// writeError answers the request with the status and message mapped from err.
// Server-side failures are logged as errors, client mistakes at debug level.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	http.Error(w, messageFromError(err, status), status)
}
