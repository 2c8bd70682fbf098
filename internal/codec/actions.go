package codec

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/go-qr-keeper/models"
)

// File names used for download actions and file export.
const (
	ContactFileName  = "contact.vcf"
	CalendarFileName = "event.ics"
)

const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// Actions returns the operations a dispatcher may offer for raw. A url that
// does not parse as http(s) gets no action, and neither do wifi and text.
func Actions(kind models.ContentKind, raw string) []models.Action {
	s := strings.TrimSpace(raw)

	switch kind {
	case models.KindURL:
		target := buildURL(s)
		u, err := url.Parse(target)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return nil
		}
		return []models.Action{{Label: "Open URL", Type: models.ActionOpen, Target: target}}

	case models.KindEmail:
		target := s
		if _, ok := cutPrefixFold(s, "mailto:"); !ok {
			target = "mailto:" + s
		}
		return []models.Action{{Label: "Send Email", Type: models.ActionOpen, Target: target}}

	case models.KindPhone:
		target := s
		if _, ok := cutPrefixFold(s, "tel:"); !ok {
			target = "tel:" + digitsOnly(s)
		}
		return []models.Action{{Label: "Call Number", Type: models.ActionOpen, Target: target}}

	case models.KindSMS:
		return []models.Action{{Label: "Send SMS", Type: models.ActionOpen, Target: s}}

	case models.KindGeo:
		g := decodeGeo(s)
		query := url.QueryEscape(g.Latitude + "," + g.Longitude)
		return []models.Action{{Label: "Open Maps", Type: models.ActionOpen, Target: mapsSearchURL + query}}

	case models.KindCalendar:
		return []models.Action{{Label: "Add to Calendar", Type: models.ActionDownload, FileName: CalendarFileName}}

	case models.KindContact:
		return []models.Action{{Label: "Save Contact", Type: models.ActionDownload, FileName: ContactFileName}}
	}

	return nil
}
