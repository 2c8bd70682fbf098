// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownKind is returned when a FieldSet is requested for a kind the
// encoder does not support.
var ErrUnknownKind = errors.New("unknown or non-buildable content kind")

// FieldSet is the structured, user-editable input used to build a payload.
// Each ContentKind that the encoder supports has exactly one implementation.
type FieldSet interface {
	Kind() ContentKind
}

// WiFi authentication modes accepted by the encoder.
const (
	WiFiAuthWPA    = "WPA"
	WiFiAuthWEP    = "WEP"
	WiFiAuthNoPass = "nopass"
)

// WiFiFields is the FieldSet for KindWiFi.
type WiFiFields struct {
	SSID     string `json:"ssid"`
	Password string `json:"password"`
	Auth     string `json:"auth"`
	Hidden   bool   `json:"hidden"`
}

func (WiFiFields) Kind() ContentKind { return KindWiFi }

// ContactFields is the FieldSet for KindContact.
type ContactFields struct {
	First   string `json:"first"`
	Last    string `json:"last"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Org     string `json:"org"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Address string `json:"address"`
}

func (ContactFields) Kind() ContentKind { return KindContact }

// EmailFields is the FieldSet for KindEmail.
type EmailFields struct {
	Address string `json:"address"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (EmailFields) Kind() ContentKind { return KindEmail }

// PhoneFields is the FieldSet for KindPhone.
type PhoneFields struct {
	Number string `json:"number"`
}

func (PhoneFields) Kind() ContentKind { return KindPhone }

// SMSFields is the FieldSet for KindSMS.
type SMSFields struct {
	Number  string `json:"number"`
	Message string `json:"message"`
}

func (SMSFields) Kind() ContentKind { return KindSMS }

// GeoFields is the FieldSet for KindGeo. Coordinates are kept as the
// strings the user typed; the encoder does not reformat them.
type GeoFields struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

func (GeoFields) Kind() ContentKind { return KindGeo }

// URLFields is the FieldSet for KindURL.
type URLFields struct {
	URL string `json:"url"`
}

func (URLFields) Kind() ContentKind { return KindURL }

// TextFields is the FieldSet for KindText.
type TextFields struct {
	Text string `json:"text"`
}

func (TextFields) Kind() ContentKind { return KindText }

// DecodeFieldSet unmarshals raw JSON into the FieldSet variant for kind.
func DecodeFieldSet(kind ContentKind, raw json.RawMessage) (FieldSet, error) {
	fs, err := emptyFieldSet(kind)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return deref(fs), nil
	}
	if err := json.Unmarshal(raw, fs); err != nil {
		return nil, fmt.Errorf("decoding %s fields: %w", kind, err)
	}
	return deref(fs), nil
}

// FieldSetFromMap builds the FieldSet for kind from loose string key/values,
// as supplied on a command line or through a tool call. Keys are the JSON
// field names of the variant, matched case-insensitively; unknown keys are
// ignored.
func FieldSetFromMap(kind ContentKind, values map[string]string) (FieldSet, error) {
	get := func(key string) string {
		for k, v := range values {
			if strings.EqualFold(k, key) {
				return v
			}
		}
		return ""
	}

	switch kind {
	case KindWiFi:
		hidden, _ := strconv.ParseBool(strings.TrimSpace(get("hidden")))
		return WiFiFields{
			SSID:     get("ssid"),
			Password: get("password"),
			Auth:     get("auth"),
			Hidden:   hidden,
		}, nil
	case KindContact:
		return ContactFields{
			First:   get("first"),
			Last:    get("last"),
			Email:   get("email"),
			Phone:   get("phone"),
			Org:     get("org"),
			Title:   get("title"),
			URL:     get("url"),
			Address: get("address"),
		}, nil
	case KindEmail:
		return EmailFields{Address: get("address"), Subject: get("subject"), Body: get("body")}, nil
	case KindPhone:
		return PhoneFields{Number: get("number")}, nil
	case KindSMS:
		return SMSFields{Number: get("number"), Message: get("message")}, nil
	case KindGeo:
		return GeoFields{Latitude: get("latitude"), Longitude: get("longitude")}, nil
	case KindURL:
		return URLFields{URL: get("url")}, nil
	case KindText:
		return TextFields{Text: get("text")}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func emptyFieldSet(kind ContentKind) (FieldSet, error) {
	switch kind {
	case KindWiFi:
		return &WiFiFields{}, nil
	case KindContact:
		return &ContactFields{}, nil
	case KindEmail:
		return &EmailFields{}, nil
	case KindPhone:
		return &PhoneFields{}, nil
	case KindSMS:
		return &SMSFields{}, nil
	case KindGeo:
		return &GeoFields{}, nil
	case KindURL:
		return &URLFields{}, nil
	case KindText:
		return &TextFields{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// deref turns the pointer used for unmarshalling back into a value variant,
// so callers can type-switch on value types only.
func deref(fs FieldSet) FieldSet {
	switch v := fs.(type) {
	case *WiFiFields:
		return *v
	case *ContactFields:
		return *v
	case *EmailFields:
		return *v
	case *PhoneFields:
		return *v
	case *SMSFields:
		return *v
	case *GeoFields:
		return *v
	case *URLFields:
		return *v
	case *TextFields:
		return *v
	}
	return fs
}
