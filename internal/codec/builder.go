package codec

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-qr-keeper/models"
)

// Builder encodes FieldSets into canonical payload strings.
// It does not validate: callers check required fields before building.
type Builder struct {
	escapeWiFi bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithWiFiEscaping backslash-escapes \ ; , " : in WiFi SSIDs and passwords.
// Without it values are emitted verbatim, which breaks payloads whose values
// contain a semicolon.
func WithWiFiEscaping() BuilderOption {
	return func(b *Builder) {
		b.escapeWiFi = true
	}
}

func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var defaultBuilder = NewBuilder()

// Build encodes fs with the default (non-escaping) builder.
func Build(fs models.FieldSet) (string, error) {
	return defaultBuilder.Build(fs)
}

// Build returns the payload for fs. The only error is an unsupported FieldSet.
func (b *Builder) Build(fs models.FieldSet) (string, error) {
	switch v := fs.(type) {
	case models.WiFiFields:
		return b.buildWiFi(v), nil
	case models.ContactFields:
		return buildContact(v), nil
	case models.EmailFields:
		return buildEmail(v), nil
	case models.PhoneFields:
		return "tel:" + digitsOnly(v.Number), nil
	case models.SMSFields:
		return buildSMS(v), nil
	case models.GeoFields:
		return "geo:" + strings.TrimSpace(v.Latitude) + "," + strings.TrimSpace(v.Longitude), nil
	case models.URLFields:
		return buildURL(v.URL), nil
	case models.TextFields:
		return v.Text, nil
	}

	return "", fmt.Errorf("%w: %T", models.ErrUnknownKind, fs)
}

func (b *Builder) buildWiFi(f models.WiFiFields) string {
	auth := strings.TrimSpace(f.Auth)
	if auth == "" {
		auth = models.WiFiAuthWPA
	}

	ssid, password := f.SSID, f.Password
	if strings.EqualFold(auth, models.WiFiAuthNoPass) {
		password = ""
	}
	if b.escapeWiFi {
		ssid, password = escapeWiFi(ssid), escapeWiFi(password)
	}

	hidden := "false"
	if f.Hidden {
		hidden = "true"
	}

	return "WIFI:T:" + auth + ";S:" + ssid + ";P:" + password + ";H:" + hidden + ";;"
}

func buildContact(f models.ContactFields) string {
	first, last := strings.TrimSpace(f.First), strings.TrimSpace(f.Last)

	var sb strings.Builder
	sb.WriteString("BEGIN:VCARD\nVERSION:3.0\n")

	line := func(prefix, value, suffix string) {
		if value = strings.TrimSpace(value); value != "" {
			sb.WriteString(prefix + value + suffix + "\n")
		}
	}

	line("FN:", strings.TrimSpace(first+" "+last), "")
	if first != "" || last != "" {
		sb.WriteString("N:" + last + ";" + first + ";;;\n")
	}
	line("EMAIL:", f.Email, "")
	line("TEL:", f.Phone, "")
	line("ORG:", f.Org, "")
	line("TITLE:", f.Title, "")
	line("URL:", f.URL, "")
	line("ADR:;;", f.Address, ";;;;")

	sb.WriteString("END:VCARD")
	return sb.String()
}

func buildEmail(f models.EmailFields) string {
	payload := "mailto:" + strings.TrimSpace(f.Address)

	var params []string
	if s := strings.TrimSpace(f.Subject); s != "" {
		params = append(params, "subject="+encodeComponent(s))
	}
	if s := strings.TrimSpace(f.Body); s != "" {
		params = append(params, "body="+encodeComponent(s))
	}
	if len(params) > 0 {
		payload += "?" + strings.Join(params, "&")
	}
	return payload
}

func buildSMS(f models.SMSFields) string {
	payload := "sms:" + digitsOnly(f.Number)
	if m := strings.TrimSpace(f.Message); m != "" {
		payload += "?body=" + encodeComponent(m)
	}
	return payload
}

func buildURL(u string) string {
	u = strings.TrimSpace(u)
	if httpSchemePattern.MatchString(u) {
		return u
	}
	return "https://" + u
}

// encodeComponent percent-encodes s for a URI query value, spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// FieldSetOf reconstructs the editable FieldSet from a payload of the given kind.
// Calendar has no FieldSet and yields nil.
func FieldSetOf(kind models.ContentKind, raw string) models.FieldSet {
	s := strings.TrimSpace(raw)

	switch kind {
	case models.KindWiFi:
		seg := wifiSegments(s)
		return models.WiFiFields{
			SSID:     seg["S"],
			Password: seg["P"],
			Auth:     seg["T"],
			Hidden:   strings.EqualFold(strings.TrimSpace(seg["H"]), "true"),
		}
	case models.KindContact:
		return ParseContact(s).FieldSet()
	case models.KindEmail:
		return decodeEmail(s)
	case models.KindPhone:
		return decodePhone(s)
	case models.KindSMS:
		return decodeSMS(s)
	case models.KindGeo:
		return decodeGeo(s)
	case models.KindURL:
		return models.URLFields{URL: s}
	case models.KindText:
		return models.TextFields{Text: raw}
	}

	return nil
}
