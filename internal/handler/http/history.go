package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qr-keeper/internal/export"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
	"github.com/MKhiriev/go-qr-keeper/models"
)

const (
	jsonContentType     = "application/json"
	historyJSONFileName = "qr-scan-history.json"
)

// importResponse is the body of a successful history import.
type importResponse struct {
	Imported int `json:"imported"`
}

// listHistory answers with the stored results, newest first, optionally
// narrowed by the `kind` and `limit` query parameters.
func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter, err := historyFilterFromQuery(r)
	if err != nil {
		writeError(w, r, err, "*Handler.listHistory")
		return
	}

	views, err := h.services.HistoryService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "*Handler.listHistory")
		return
	}
	if views == nil {
		views = []models.ResultView{}
	}

	if _, err = utils.WriteJSON(w, views, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listHistory").Msg("error writing response")
	}
}

func (h *Handler) getHistoryEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := resultIDFromURL(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getHistoryEntry")
		return
	}

	view, err := h.services.HistoryService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "*Handler.getHistoryEntry")
		return
	}

	if _, err = utils.WriteJSON(w, view, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getHistoryEntry").Msg("error writing response")
	}
}

// getHistoryFile downloads the vCard or iCalendar file of one entry.
func (h *Handler) getHistoryFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := resultIDFromURL(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getHistoryFile")
		return
	}

	file, err := h.services.HistoryService.File(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "*Handler.getHistoryFile")
		return
	}

	if _, err = utils.WriteAttachment(w, file.ContentType, file.Name, file.Body); err != nil {
		log.Err(err).Str("func", "*Handler.getHistoryFile").Msg("error writing file")
	}
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HistoryService.Clear(r.Context()); err != nil {
		writeError(w, r, err, "*Handler.clearHistory")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) exportHistoryCSV(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var buf bytes.Buffer
	if err := h.services.HistoryService.ExportCSV(r.Context(), &buf); err != nil {
		writeError(w, r, err, "*Handler.exportHistoryCSV")
		return
	}

	if _, err := utils.WriteAttachment(w, export.CSVContentType, export.CSVFileName(time.Now()), buf.Bytes()); err != nil {
		log.Err(err).Str("func", "*Handler.exportHistoryCSV").Msg("error writing csv")
	}
}

func (h *Handler) exportHistoryJSON(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var buf bytes.Buffer
	if err := h.services.HistoryService.ExportJSON(r.Context(), &buf); err != nil {
		writeError(w, r, err, "*Handler.exportHistoryJSON")
		return
	}

	if _, err := utils.WriteAttachment(w, jsonContentType, historyJSONFileName, buf.Bytes()); err != nil {
		log.Err(err).Str("func", "*Handler.exportHistoryJSON").Msg("error writing json")
	}
}

// importHistoryJSON merges a JSON history file posted as the request body.
func (h *Handler) importHistoryJSON(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	imported, err := h.services.HistoryService.ImportJSON(r.Context(), r.Body)
	if err != nil {
		writeError(w, r, err, "*Handler.importHistoryJSON")
		return
	}

	log.Info().Int("imported", imported).Msg("history imported")
	if _, err = utils.WriteJSON(w, importResponse{Imported: imported}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.importHistoryJSON").Msg("error writing response")
	}
}

func resultIDFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidResultID, chi.URLParam(r, "id"))
	}
	return id, nil
}

func historyFilterFromQuery(r *http.Request) (models.HistoryFilter, error) {
	var filter models.HistoryFilter
	query := r.URL.Query()

	if raw := query.Get("kind"); raw != "" {
		kind, ok := models.ParseContentKind(raw)
		if !ok {
			return models.HistoryFilter{}, fmt.Errorf("%w: %q", ErrInvalidKind, raw)
		}
		filter.Kind = kind
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return models.HistoryFilter{}, fmt.Errorf("%w: %q", ErrInvalidLimit, raw)
		}
		filter.Limit = limit
	}

	return filter, nil
}
