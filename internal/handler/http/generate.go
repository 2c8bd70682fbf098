package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-qr-keeper/internal/app"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
	"github.com/MKhiriev/go-qr-keeper/models"
)

const pngContentType = "image/png"

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, ok := decodeGenerateRequest(w, r, "*Handler.generate")
	if !ok {
		return
	}

	payload, err := h.services.GenerateService.Generate(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.generate")
		return
	}

	if _, err = utils.WriteJSON(w, payload, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.generate").Msg("error writing response")
	}
}

// generatePNG builds the payload and answers with its QR image. The `size`
// query parameter takes precedence over options.size of the body.
func (h *Handler) generatePNG(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, ok := decodeGenerateRequest(w, r, "*Handler.generatePNG")
	if !ok {
		return
	}

	size := req.Options.Size
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidSizeParam, err), "*Handler.generatePNG")
			return
		}
		size = parsed
	}

	payload, err := h.services.GenerateService.Generate(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.generatePNG")
		return
	}

	png, err := h.services.GenerateService.PNG(r.Context(), payload, size)
	if err != nil {
		writeError(w, r, err, "*Handler.generatePNG")
		return
	}

	w.Header().Set("Content-Type", pngContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(png); err != nil {
		log.Err(err).Str("func", "*Handler.generatePNG").Msg("error writing image")
	}
}

func decodeGenerateRequest(w http.ResponseWriter, r *http.Request, funcName string) (models.GenerateRequest, bool) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return models.GenerateRequest{}, false
	}
	return req, true
}
