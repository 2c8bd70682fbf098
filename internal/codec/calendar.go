package codec

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-qr-keeper/models"
)

// DateLayout is how event start times are shown.
const DateLayout = "Jan 2, 2006 15:04"

const (
	icalDateTime = "20060102T150405"
	icalDate     = "20060102"
)

func parseCalendar(s string) []models.Field {
	props := make(map[string]string)
	for _, line := range unfoldLines(s) {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key, _, _ := strings.Cut(name, ";")
		key = strings.ToUpper(strings.TrimSpace(key))
		if _, seen := props[key]; !seen {
			props[key] = strings.TrimSpace(value)
		}
	}

	var fields []models.Field
	add := func(label, value string) {
		if value != "" {
			fields = append(fields, models.Field{Label: label, Value: value})
		}
	}

	add(LabelEvent, props["SUMMARY"])
	if start, ok := ParseEventTime(props["DTSTART"]); ok {
		add(LabelDate, start.Format(DateLayout))
	}
	add(LabelLocation, props["LOCATION"])
	add(LabelDescription, props["DESCRIPTION"])

	return fields
}

// ParseEventTime parses an iCalendar DATE-TIME (YYYYMMDDTHHMMSS, optionally
// Z-suffixed for UTC) or DATE value into local time.
func ParseEventTime(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)

	if utc, ok := strings.CutSuffix(v, "Z"); ok {
		t, err := time.ParseInLocation(icalDateTime, utc, time.UTC)
		if err != nil {
			return time.Time{}, false
		}
		return t.Local(), true
	}

	for _, layout := range []string{icalDateTime, icalDate} {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
