// Package export writes scan history and single results in the formats users
// download: a CSV of the history and vCard/iCalendar files of one result.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-qr-keeper/internal/codec"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// ErrNoFileExport is returned for kinds that have no file representation.
var ErrNoFileExport = errors.New("content kind has no file export")

const (
	CSVContentType = "text/csv; charset=utf-8"

	VCardContentType    = "text/vcard"
	CalendarContentType = "text/calendar"

	csvHeader = "Type,Data,Timestamp"
)

// File is a downloadable representation of one result.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// CSVFileName names a history export after the day it was made.
func CSVFileName(at time.Time) string {
	return "qr-scan-history-" + at.UTC().Format(time.DateOnly) + ".csv"
}

// WriteCSV writes one row per result under a Type,Data,Timestamp header.
// Data is always quoted with inner quotes doubled; Type and Timestamp never
// need quoting. Rows are separated by "\n".
func WriteCSV(w io.Writer, results []models.ClassifiedResult) error {
	var b strings.Builder
	b.WriteString(csvHeader)

	for _, r := range results {
		b.WriteByte('\n')
		b.WriteString(r.Kind.String())
		b.WriteByte(',')
		b.WriteString(quoteCSV(r.Data))
		b.WriteByte(',')
		b.WriteString(r.CapturedAt.UTC().Format(time.RFC3339))
	}
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("error writing csv: %w", err)
	}
	return nil
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// FileFor returns the verbatim payload of a contact or calendar result as a
// .vcf or .ics file.
func FileFor(r models.ClassifiedResult) (File, error) {
	switch r.Kind {
	case models.KindContact:
		return File{Name: codec.ContactFileName, ContentType: VCardContentType, Body: []byte(r.Data)}, nil
	case models.KindCalendar:
		return File{Name: codec.CalendarFileName, ContentType: CalendarContentType, Body: []byte(r.Data)}, nil
	default:
		return File{}, fmt.Errorf("%w: %s", ErrNoFileExport, r.Kind)
	}
}
