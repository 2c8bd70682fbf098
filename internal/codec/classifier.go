package codec

import (
	"strings"

	"github.com/MKhiriev/go-qr-keeper/models"
)

// Detect returns the ContentKind of raw.
//
// Literal prefixes are checked first so that, for example, "tel:123456789"
// never falls through to the bare phone heuristic or "WIFI:S:a.com;;" to url.
// Empty or blank input is text.
func Detect(raw string) models.ContentKind {
	s := strings.TrimSpace(raw)
	if s == "" {
		return models.KindText
	}

	for _, r := range grammar {
		if r.matchPrefix(s) {
			return r.Kind
		}
	}

	for _, kind := range heuristicOrder {
		r, _ := RuleFor(kind)
		if r.matchHeuristic(s) {
			return kind
		}
	}

	return models.KindText
}
