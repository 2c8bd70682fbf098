package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-qr-keeper/models"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.ContentKind
	}{
		{"https url", "https://google.com", models.KindURL},
		{"bare host", "google.com", models.KindURL},
		{"host with path", "example.org/a/b?c=d", models.KindURL},
		{"url padded with spaces", "  https://x.org  ", models.KindURL},
		{"wifi", "WIFI:T:WPA;S:CafeNet;P:letmein;H:false;;", models.KindWiFi},
		{"wifi lower case", "wifi:S:home.example.com;;", models.KindWiFi},
		{"vcard", "BEGIN:VCARD\nVERSION:3.0\nFN:Jane\nEND:VCARD", models.KindContact},
		{"vevent", "BEGIN:VEVENT\nSUMMARY:Meeting\nEND:VEVENT", models.KindCalendar},
		{"mailto", "mailto:jane@x.com", models.KindEmail},
		{"MAILTO upper case", "MAILTO:jane@x.com?subject=hi", models.KindEmail},
		{"bare email", "jane.doe+qr@example.co.uk", models.KindEmail},
		{"tel", "tel:+15551234567", models.KindPhone},
		{"bare international phone", "+1 555 123 4567", models.KindPhone},
		{"bare digits", "5551234567", models.KindPhone},
		{"sms", "sms:5551234?body=hi", models.KindSMS},
		{"geo", "geo:37.7749,-122.4194", models.KindGeo},
		{"plain text", "hello world", models.KindText},
		{"short number", "2025", models.KindText},
		{"empty", "", models.KindText},
		{"blank", "   \n\t", models.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.raw))
		})
	}
}

func TestDetect_PrefixWinsOverHeuristics(t *testing.T) {
	// each of these also satisfies a loose pattern once the prefix is ignored
	tests := map[string]models.ContentKind{
		"mailto:jane@x.com":  models.KindEmail,
		"tel:5551234567":     models.KindPhone,
		"sms:5551234567":     models.KindSMS,
		"geo:1.5,2.5":        models.KindGeo,
		"WIFI:S:a.com;P:;;":  models.KindWiFi,
		"BEGIN:VCARD":        models.KindContact,
		"begin:vevent\nEND:": models.KindCalendar,
	}

	for raw, want := range tests {
		assert.Equal(t, want, Detect(raw), raw)
	}
}

func TestDetect_Deterministic(t *testing.T) {
	for _, raw := range []string{"google.com", "jane@x.com", "WIFI:S:x;;", "anything"} {
		first := Detect(raw)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Detect(raw))
		}
	}
}

func TestGrammar_EveryKindHasARule(t *testing.T) {
	rules := Grammar()
	assert.Len(t, rules, len(models.Kinds()))
	assert.Equal(t, models.KindText, rules[len(rules)-1].Kind)

	for _, k := range models.Kinds() {
		r, ok := RuleFor(k)
		assert.True(t, ok, k.String())
		assert.NotEmpty(t, r.Pattern(), k.String())
	}
}

func TestRule_Match(t *testing.T) {
	email, _ := RuleFor(models.KindEmail)
	assert.True(t, email.Match("mailto:x"))
	assert.True(t, email.Match("a@b.io"))
	assert.False(t, email.Match("a@b"))

	text, _ := RuleFor(models.KindText)
	assert.True(t, text.Match(""))
	assert.True(t, text.Match("multi\nline"))
}

func TestTypeInfoFor(t *testing.T) {
	info := TypeInfoFor(models.KindWiFi)
	assert.Equal(t, models.KindWiFi, info.Type)
	assert.Equal(t, "(?i)^WIFI:", info.Pattern)

	email := TypeInfoFor(models.KindEmail)
	assert.Equal(t, `(?i)^mailto:|(?i)^[\w.%+-]+@[\w.-]+\.[a-z]{2,}$`, email.Pattern)

	unknown := TypeInfoFor("barcode")
	assert.Equal(t, models.KindText, unknown.Type)
}
