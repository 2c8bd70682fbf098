package codec

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/go-qr-keeper/models"
)

// splitQuery separates "target?query" and decodes the query leniently: a
// malformed query yields no parameters rather than an error.
func splitQuery(s string) (string, url.Values) {
	target, query, found := strings.Cut(s, "?")
	if !found {
		return target, url.Values{}
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return target, url.Values{}
	}
	return target, values
}

// firstParam looks a query parameter up case-insensitively.
func firstParam(values url.Values, name string) string {
	for k, v := range values {
		if strings.EqualFold(k, name) && len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func decodeEmail(s string) models.EmailFields {
	rest, _ := cutPrefixFold(s, "mailto:")
	address, query := splitQuery(rest)
	if unescaped, err := url.PathUnescape(address); err == nil {
		address = unescaped
	}
	return models.EmailFields{
		Address: address,
		Subject: firstParam(query, "subject"),
		Body:    firstParam(query, "body"),
	}
}

func parseEmail(s string) []models.Field {
	e := decodeEmail(s)
	return nonEmptyFields(
		models.Field{Label: LabelAddress, Value: e.Address},
		models.Field{Label: LabelSubject, Value: e.Subject},
		models.Field{Label: LabelBody, Value: e.Body},
	)
}

func decodePhone(s string) models.PhoneFields {
	number, _ := cutPrefixFold(s, "tel:")
	return models.PhoneFields{Number: strings.TrimSpace(number)}
}

func parsePhone(s string) []models.Field {
	return nonEmptyFields(models.Field{Label: LabelNumber, Value: decodePhone(s).Number})
}

func decodeSMS(s string) models.SMSFields {
	rest, _ := cutPrefixFold(s, "sms:")
	number, query := splitQuery(rest)
	return models.SMSFields{
		Number:  number,
		Message: firstParam(query, "body"),
	}
}

func parseSMS(s string) []models.Field {
	m := decodeSMS(s)
	return nonEmptyFields(
		models.Field{Label: LabelNumber, Value: m.Number},
		models.Field{Label: LabelMessage, Value: m.Message},
	)
}

// decodeGeo reads "geo:lat,lng" and ignores any altitude, ";u=" uncertainty
// or "?q=" query that may follow.
func decodeGeo(s string) models.GeoFields {
	rest, _ := cutPrefixFold(s, "geo:")
	if i := strings.IndexAny(rest, ";?"); i >= 0 {
		rest = rest[:i]
	}
	parts := strings.Split(rest, ",")
	g := models.GeoFields{Latitude: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		g.Longitude = strings.TrimSpace(parts[1])
	}
	return g
}

func parseGeo(s string) []models.Field {
	g := decodeGeo(s)
	return nonEmptyFields(
		models.Field{Label: LabelLatitude, Value: g.Latitude},
		models.Field{Label: LabelLongitude, Value: g.Longitude},
	)
}

func nonEmptyFields(in ...models.Field) []models.Field {
	var out []models.Field
	for _, f := range in {
		if f.Value != "" {
			out = append(out, f)
		}
	}
	return out
}
