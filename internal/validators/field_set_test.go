// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-keeper/models"
)

func TestNewFieldSetValidator(t *testing.T) {
	require.NotNil(t, NewFieldSetValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewFieldSetValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("value and pointer", func(t *testing.T) {
		fs := models.WiFiFields{SSID: "Home"}
		require.NoError(t, v.Validate(ctx, fs))
		require.NoError(t, v.Validate(ctx, &fs))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.TextFields{Text: "x"}, "nope"), ErrUnknownField)
	})
}

func TestValidate_FieldSets(t *testing.T) {
	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{"wifi ok", models.WiFiFields{SSID: "Home", Auth: models.WiFiAuthWPA}, nil},
		{"wifi nopass ok", models.WiFiFields{SSID: "Guest", Auth: models.WiFiAuthNoPass}, nil},
		{"wifi blank ssid", models.WiFiFields{SSID: "  ", Auth: models.WiFiAuthWPA}, ErrEmptySSID},
		{"wifi bad auth", models.WiFiFields{SSID: "Home", Auth: "WPA3-ENTERPRISE"}, ErrInvalidWiFiAuth},
		{"wifi lower-case wpa ok", models.WiFiFields{SSID: "Home", Auth: "wpa"}, nil},
		{"wifi upper-case nopass ok", models.WiFiFields{SSID: "Guest", Auth: "NOPASS"}, nil},
		{"wifi padded wep ok", models.WiFiFields{SSID: "Old", Auth: " Wep "}, nil},

		{"contact with name", models.ContactFields{First: "Jane"}, nil},
		{"contact with phone only", &models.ContactFields{Phone: "555"}, nil},
		{"contact with only org", models.ContactFields{Org: "Acme"}, ErrEmptyContact},

		{"email ok", models.EmailFields{Address: "a@b.com"}, nil},
		{"email blank", models.EmailFields{Subject: "hi"}, ErrEmptyEmailAddress},

		{"phone ok", models.PhoneFields{Number: "+1 (555)"}, nil},
		{"phone no digits", models.PhoneFields{Number: "call me"}, ErrEmptyPhoneNumber},
		{"sms ok", models.SMSFields{Number: "555"}, nil},
		{"sms empty", &models.SMSFields{Message: "hello"}, ErrEmptyPhoneNumber},

		{"geo ok", models.GeoFields{Latitude: "37.7749", Longitude: "-122.4194"}, nil},
		{"geo missing longitude", models.GeoFields{Latitude: "1"}, ErrEmptyCoordinates},
		{"geo latitude out of range", models.GeoFields{Latitude: "91", Longitude: "0"}, ErrInvalidCoordinates},
		{"geo not a number", models.GeoFields{Latitude: "north", Longitude: "0"}, ErrInvalidCoordinates},

		{"url ok", models.URLFields{URL: "google.com"}, nil},
		{"url blank", models.URLFields{}, ErrEmptyURL},

		{"text ok", models.TextFields{Text: "hello"}, nil},
		{"text blank", models.TextFields{Text: "\n"}, ErrEmptyText},
	}

	v := NewFieldSetValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_GenerateOptions(t *testing.T) {
	v := NewFieldSetValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.GenerateOptions{}))
	assert.NoError(t, v.Validate(ctx, models.GenerateOptions{ErrorCorrectionLevel: "q", Size: 256}))
	assert.ErrorIs(t, v.Validate(ctx, models.GenerateOptions{ErrorCorrectionLevel: "X"}), ErrInvalidECL)
	assert.ErrorIs(t, v.Validate(ctx, &models.GenerateOptions{Size: -1}), ErrInvalidSize)
}

func TestValidate_FieldScoping(t *testing.T) {
	v := NewFieldSetValidator()

	// only the auth check runs, so the blank SSID is not reported
	err := v.Validate(context.Background(), models.WiFiFields{Auth: models.WiFiAuthWEP}, FieldAuth)
	assert.NoError(t, err)
}
