package utils

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"
)

// WriteJSON marshals data and writes it with statusCode and an
// application/json content type. A marshal failure is answered with 500.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteAttachment writes body as a downloadable file named fileName.
func WriteAttachment(w http.ResponseWriter, contentType, fileName string, body []byte) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)

	return w.Write(body)
}
