// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-keeper/models"
)

type barcodeFields struct{}

func (barcodeFields) Kind() models.ContentKind { return "barcode" }

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		fs   models.FieldSet
		want string
	}{
		{
			name: "wifi",
			fs:   models.WiFiFields{SSID: "Home", Password: "secret123", Auth: "WPA"},
			want: "WIFI:T:WPA;S:Home;P:secret123;H:false;;",
		},
		{
			name: "wifi nopass drops password",
			fs:   models.WiFiFields{SSID: "Guest", Password: "ignored", Auth: "nopass", Hidden: true},
			want: "WIFI:T:nopass;S:Guest;P:;H:true;;",
		},
		{
			name: "wifi default auth",
			fs:   models.WiFiFields{SSID: "x"},
			want: "WIFI:T:WPA;S:x;P:;H:false;;",
		},
		{
			name: "wifi values are not escaped by default",
			fs:   models.WiFiFields{SSID: "My;Net", Auth: "WPA"},
			want: "WIFI:T:WPA;S:My;Net;P:;H:false;;",
		},
		{
			name: "contact minimal",
			fs:   models.ContactFields{First: "Jane", Last: "Doe", Email: "jane@x.com"},
			want: "BEGIN:VCARD\nVERSION:3.0\nFN:Jane Doe\nN:Doe;Jane;;;\nEMAIL:jane@x.com\nEND:VCARD",
		},
		{
			name: "contact full",
			fs: models.ContactFields{
				First: "Jane", Last: "Doe", Email: "jane@x.com", Phone: "+1 555 1234",
				Org: "Acme", Title: "CTO", URL: "https://acme.io", Address: "1 Main St",
			},
			want: "BEGIN:VCARD\nVERSION:3.0\nFN:Jane Doe\nN:Doe;Jane;;;\nEMAIL:jane@x.com\nTEL:+1 555 1234\n" +
				"ORG:Acme\nTITLE:CTO\nURL:https://acme.io\nADR:;;1 Main St;;;;\nEND:VCARD",
		},
		{
			name: "contact blank optionals omitted",
			fs:   models.ContactFields{Last: "Doe", Org: "   ", Phone: "\t"},
			want: "BEGIN:VCARD\nVERSION:3.0\nFN:Doe\nN:Doe;;;;\nEND:VCARD",
		},
		{
			name: "contact email only",
			fs:   models.ContactFields{Email: "a@b.com"},
			want: "BEGIN:VCARD\nVERSION:3.0\nEMAIL:a@b.com\nEND:VCARD",
		},
		{
			name: "email with params",
			fs:   models.EmailFields{Address: "a@b.com", Subject: "Hi there", Body: "x&y"},
			want: "mailto:a@b.com?subject=Hi%20there&body=x%26y",
		},
		{
			name: "email body only",
			fs:   models.EmailFields{Address: "a@b.com", Body: "x"},
			want: "mailto:a@b.com?body=x",
		},
		{
			name: "email address only",
			fs:   models.EmailFields{Address: "a@b.com", Subject: "  "},
			want: "mailto:a@b.com",
		},
		{
			name: "phone strips non digits",
			fs:   models.PhoneFields{Number: "+1 (555) 123-4567"},
			want: "tel:15551234567",
		},
		{
			name: "sms with message",
			fs:   models.SMSFields{Number: "555-1234", Message: "On my way"},
			want: "sms:5551234?body=On%20my%20way",
		},
		{
			name: "sms without message",
			fs:   models.SMSFields{Number: "555-1234"},
			want: "sms:5551234",
		},
		{
			name: "geo",
			fs:   models.GeoFields{Latitude: "37.7749", Longitude: "-122.4194"},
			want: "geo:37.7749,-122.4194",
		},
		{
			name: "url gets https",
			fs:   models.URLFields{URL: "google.com"},
			want: "https://google.com",
		},
		{
			name: "url keeps http scheme",
			fs:   models.URLFields{URL: "HTTP://example.org"},
			want: "HTTP://example.org",
		},
		{
			name: "url trimmed",
			fs:   models.URLFields{URL: " example.com "},
			want: "https://example.com",
		},
		{
			name: "text unchanged",
			fs:   models.TextFields{Text: "  hello ; world  "},
			want: "  hello ; world  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.fs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_UnknownFieldSet(t *testing.T) {
	_, err := Build(barcodeFields{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrUnknownKind))
}

func TestBuild_Idempotent(t *testing.T) {
	fs := models.ContactFields{First: "Jane", Last: "Doe", Email: "jane@x.com", Phone: "555"}

	first, err := Build(fs)
	require.NoError(t, err)
	second, err := Build(fs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuilder_WiFiEscaping(t *testing.T) {
	b := NewBuilder(WithWiFiEscaping())

	payload, err := b.Build(models.WiFiFields{SSID: "My;Net", Password: `a,b"c:d\e`, Auth: "WPA", Hidden: true})
	require.NoError(t, err)
	assert.Equal(t, `WIFI:T:WPA;S:My\;Net;P:a\,b\"c\:d\\e;H:true;;`, payload)

	fields := Parse(models.KindWiFi, payload)
	assert.Equal(t, []models.Field{
		{Label: LabelSSID, Value: "My;Net"},
		{Label: LabelAuthentication, Value: "WPA"},
		{Label: LabelPassword, Value: `a,b"c:d\e`},
		{Label: LabelHidden, Value: "Yes"},
	}, fields)
}

// Без экранирования обратный слеш уходит в payload как есть, а парсер
// считает его escape-префиксом. Round trip теряет слеш; WithWiFiEscaping
// сохраняет его.
func TestBuilder_WiFiBackslashWithoutEscaping(t *testing.T) {
	fields := models.WiFiFields{SSID: "Home", Password: `se\c`, Auth: "WPA"}

	payload, err := Build(fields)
	require.NoError(t, err)
	assert.Equal(t, `WIFI:T:WPA;S:Home;P:se\c;H:false;;`, payload)

	got, ok := models.ClassifiedResult{Fields: Parse(models.KindWiFi, payload)}.Lookup(LabelPassword)
	require.True(t, ok)
	assert.Equal(t, "sec", got)

	escaped, err := NewBuilder(WithWiFiEscaping()).Build(fields)
	require.NoError(t, err)
	got, ok = models.ClassifiedResult{Fields: Parse(models.KindWiFi, escaped)}.Lookup(LabelPassword)
	require.True(t, ok)
	assert.Equal(t, `se\c`, got)
}

func TestWiFiRoundTrip(t *testing.T) {
	payload, err := Build(models.WiFiFields{SSID: "Home", Password: "secret123", Auth: "WPA", Hidden: false})
	require.NoError(t, err)

	r := models.ClassifiedResult{Kind: Detect(payload), Fields: Parse(Detect(payload), payload)}
	assert.Equal(t, models.KindWiFi, r.Kind)

	for label, want := range map[string]string{
		LabelSSID:           "Home",
		LabelPassword:       "secret123",
		LabelAuthentication: "WPA",
		LabelHidden:         "No",
	} {
		got, ok := r.Lookup(label)
		assert.True(t, ok, label)
		assert.Equal(t, want, got, label)
	}
}

func TestContactRoundTrip(t *testing.T) {
	payload, err := Build(models.ContactFields{First: "Jane", Last: "Doe", Email: "jane@x.com"})
	require.NoError(t, err)

	assert.Contains(t, payload, "FN:Jane Doe")
	assert.Contains(t, payload, "N:Doe;Jane;;;")
	assert.Contains(t, payload, "EMAIL:jane@x.com")

	require.Equal(t, models.KindContact, Detect(payload))
	c := ParseContact(payload)
	assert.Equal(t, "Jane Doe", c.Name())
	assert.Equal(t, "jane@x.com", c.Email())
}

// Building, decoding back into a FieldSet and building again must be stable
// for every buildable kind.
func TestFieldSetOf_RoundTrip(t *testing.T) {
	sets := []models.FieldSet{
		models.WiFiFields{SSID: "Home", Password: "secret123", Auth: "WPA", Hidden: true},
		models.ContactFields{
			First: "Jane", Last: "Doe", Email: "jane@x.com", Phone: "+15551234567",
			Org: "Acme", Title: "CTO", URL: "https://acme.io", Address: "1 Main St",
		},
		models.EmailFields{Address: "a@b.com", Subject: "Hi there", Body: "See you"},
		models.PhoneFields{Number: "15551234567"},
		models.SMSFields{Number: "5551234", Message: "On my way"},
		models.GeoFields{Latitude: "37.7749", Longitude: "-122.4194"},
		models.URLFields{URL: "https://example.com/path"},
		models.TextFields{Text: "hello world"},
	}

	for _, fs := range sets {
		t.Run(fs.Kind().String(), func(t *testing.T) {
			payload, err := Build(fs)
			require.NoError(t, err)

			kind := Detect(payload)
			require.Equal(t, fs.Kind(), kind)

			back := FieldSetOf(kind, payload)
			if diff := cmp.Diff(fs, back); diff != "" {
				t.Errorf("FieldSetOf mismatch (-want +got):\n%s", diff)
			}

			again, err := Build(back)
			require.NoError(t, err)
			assert.Equal(t, payload, again)
		})
	}
}

func TestFieldSetOf_Calendar(t *testing.T) {
	assert.Nil(t, FieldSetOf(models.KindCalendar, "BEGIN:VEVENT\nEND:VEVENT"))
}

func TestFieldSetOf_PhoneNormalisesOnRebuild(t *testing.T) {
	payload, err := Build(models.PhoneFields{Number: "+1 (555) 123-4567"})
	require.NoError(t, err)

	back := FieldSetOf(models.KindPhone, payload)
	assert.Equal(t, models.PhoneFields{Number: "15551234567"}, back)
}
