package codec

import (
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-qr-keeper/models"
)

const descriptionLimit = 50

// Display returns raw with the URI scheme of email, phone, sms and geo payloads stripped.
func Display(kind models.ContentKind, raw string) string {
	var prefix string
	switch kind {
	case models.KindEmail:
		prefix = "mailto:"
	case models.KindPhone:
		prefix = "tel:"
	case models.KindSMS:
		prefix = "sms:"
	case models.KindGeo:
		prefix = "geo:"
	default:
		return raw
	}

	s, _ := cutPrefixFold(strings.TrimSpace(raw), prefix)
	return s
}

// Title is the notification heading for a detected kind, e.g. "Wifi QR Code Detected".
func Title(kind models.ContentKind) string {
	return kind.Title() + " QR Code Detected"
}

// Description shortens raw to at most 50 runes, marking the cut with "...".
func Description(raw string) string {
	if utf8.RuneCountInString(raw) <= descriptionLimit {
		return raw
	}
	return string([]rune(raw)[:descriptionLimit]) + "..."
}
