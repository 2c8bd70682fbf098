package models

import "strings"

// ContentKind is the semantic category assigned to a QR payload.
// The set is closed; see [Kinds] for the canonical ordering.
type ContentKind string

const (
	// KindURL is a web address, with or without an http(s) scheme.
	KindURL ContentKind = "url"

	// KindText is the universal fallback for payloads no other grammar claims.
	KindText ContentKind = "text"

	// KindWiFi is a WiFi network configuration string (WIFI:...;;).
	KindWiFi ContentKind = "wifi"

	// KindContact is a vCard (BEGIN:VCARD ... END:VCARD).
	KindContact ContentKind = "contact"

	// KindEmail is a mailto: URI or a bare e-mail address.
	KindEmail ContentKind = "email"

	// KindPhone is a tel: URI or a bare phone number.
	KindPhone ContentKind = "phone"

	// KindSMS is an sms: URI with an optional message body.
	KindSMS ContentKind = "sms"

	// KindGeo is a geo: URI carrying latitude and longitude.
	KindGeo ContentKind = "geo"

	// KindCalendar is an iCalendar event (BEGIN:VEVENT). Decode-only.
	KindCalendar ContentKind = "calendar"
)

var kinds = []ContentKind{
	KindURL,
	KindText,
	KindWiFi,
	KindContact,
	KindEmail,
	KindPhone,
	KindSMS,
	KindGeo,
	KindCalendar,
}

// Kinds returns every ContentKind in declaration order.
func Kinds() []ContentKind {
	out := make([]ContentKind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseContentKind resolves a kind name case-insensitively.
func ParseContentKind(s string) (ContentKind, bool) {
	candidate := ContentKind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range kinds {
		if k == candidate {
			return k, true
		}
	}
	return "", false
}

// IsValid reports whether k is one of the known kinds.
func (k ContentKind) IsValid() bool {
	for _, known := range kinds {
		if k == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (k ContentKind) String() string {
	return string(k)
}

// Title returns the kind name with its first letter upper-cased
// (e.g. "wifi" -> "Wifi"), as shown in scan notifications.
func (k ContentKind) Title() string {
	if k == "" {
		return ""
	}
	s := string(k)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Buildable reports whether the encoder can produce a payload for k.
// Calendar events are recognised on scan but never generated.
func (k ContentKind) Buildable() bool {
	return k.IsValid() && k != KindCalendar
}
