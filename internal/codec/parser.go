package codec

import (
	"strings"

	"github.com/MKhiriev/go-qr-keeper/models"
)

// NotAvailable is the value shown for a WiFi segment that is missing or empty.
const NotAvailable = "N/A"

// Field labels.
const (
	LabelSSID           = "SSID"
	LabelAuthentication = "Authentication"
	LabelPassword       = "Password"
	LabelHidden         = "Hidden"

	LabelEvent       = "Event"
	LabelDate        = "Date"
	LabelLocation    = "Location"
	LabelDescription = "Description"

	LabelAddress   = "Address"
	LabelSubject   = "Subject"
	LabelBody      = "Body"
	LabelNumber    = "Number"
	LabelMessage   = "Message"
	LabelLatitude  = "Latitude"
	LabelLongitude = "Longitude"
)

// Parse extracts display-ready fields from raw according to kind.
// It never fails: segments that cannot be found are defaulted or omitted.
func Parse(kind models.ContentKind, raw string) []models.Field {
	s := strings.TrimSpace(raw)

	switch kind {
	case models.KindWiFi:
		return parseWiFi(s)
	case models.KindContact:
		return ParseContact(s).Fields()
	case models.KindCalendar:
		return parseCalendar(s)
	case models.KindEmail:
		return parseEmail(s)
	case models.KindPhone:
		return parsePhone(s)
	case models.KindSMS:
		return parseSMS(s)
	case models.KindGeo:
		return parseGeo(s)
	}

	return nil
}

// wifiSegments splits a WIFI: payload into its key/value segments.
// Keys are upper-cased; the first occurrence of a key wins.
func wifiSegments(s string) map[string]string {
	body, ok := cutPrefixFold(s, "WIFI:")
	if !ok {
		return map[string]string{}
	}

	segments := make(map[string]string)
	for _, part := range splitUnescaped(body, ';') {
		key, value, found := cutUnescaped(part, ':')
		if !found {
			continue
		}
		key = strings.ToUpper(strings.TrimSpace(key))
		if _, seen := segments[key]; seen || key == "" {
			continue
		}
		segments[key] = unescapeWiFi(value)
	}
	return segments
}

func parseWiFi(s string) []models.Field {
	seg := wifiSegments(s)

	orNA := func(key string) string {
		if v := seg[key]; v != "" {
			return v
		}
		return NotAvailable
	}

	hidden := "No"
	if strings.EqualFold(strings.TrimSpace(seg["H"]), "true") {
		hidden = "Yes"
	}

	return []models.Field{
		{Label: LabelSSID, Value: orNA("S")},
		{Label: LabelAuthentication, Value: orNA("T")},
		{Label: LabelPassword, Value: orNA("P")},
		{Label: LabelHidden, Value: hidden},
	}
}

// splitUnescaped splits s on sep, ignoring separators preceded by a backslash.
// Escape sequences are kept intact in the returned parts.
func splitUnescaped(s string, sep byte) []string {
	var (
		parts   []string
		start   int
		escaped bool
	)
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == sep:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

func cutUnescaped(s string, sep byte) (before, after string, found bool) {
	escaped := false
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == sep:
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
