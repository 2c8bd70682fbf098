package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-qr-keeper/internal/app"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// scan classifies the posted payload and stores it in the history.
func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.scan").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	view, err := h.services.ScanService.Scan(r.Context(), req.Data)
	if err != nil {
		writeError(w, r, err, "*Handler.scan")
		return
	}

	if _, err = utils.WriteJSON(w, view, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.scan").Msg("error writing response")
	}
}

// classify answers with the classification of the posted payload without
// touching the history.
func (h *Handler) classify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.classify").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	view, err := h.services.ScanService.Classify(r.Context(), req.Data)
	if err != nil {
		writeError(w, r, err, "*Handler.classify")
		return
	}

	if _, err = utils.WriteJSON(w, view, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.classify").Msg("error writing response")
	}
}
