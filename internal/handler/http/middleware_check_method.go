// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
)

// CheckHTTPMethod is registered with [chi.Mux.MethodNotAllowed].
//
// chi answers 405 when a path is routed but the method is not. The API
// answers 404 instead so an unsupported method looks like an unknown route.
// chi only gets here once routing has failed, so the request is never handed
// back to the router.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("func", "CheckHTTPMethod").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not routed for path")

	w.WriteHeader(http.StatusNotFound)
}
