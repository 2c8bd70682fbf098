package validators

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-qr-keeper/models"
)

// Field names accepted by FieldSetValidator.Validate.
const (
	FieldSSID        = "ssid"
	FieldAuth        = "auth"
	FieldIdentity    = "identity"
	FieldAddress     = "address"
	FieldNumber      = "number"
	FieldCoordinates = "coordinates"
	FieldURL         = "url"
	FieldText        = "text"

	FieldErrorCorrectionLevel = "error_correction_level"
	FieldSize                 = "size"
)

// FieldSetValidator validates every models.FieldSet variant and
// models.GenerateOptions. Value and pointer forms are both accepted.
type FieldSetValidator struct {
}

func NewFieldSetValidator() Validator {
	return &FieldSetValidator{}
}

func (v *FieldSetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.WiFiFields:
		return v.validateWiFi(value, fields...)
	case *models.WiFiFields:
		return v.validateWiFi(*value, fields...)

	case models.ContactFields:
		return v.validateContact(value, fields...)
	case *models.ContactFields:
		return v.validateContact(*value, fields...)

	case models.EmailFields:
		return v.validateEmail(value, fields...)
	case *models.EmailFields:
		return v.validateEmail(*value, fields...)

	case models.PhoneFields:
		return v.validateNumber(value.Number, fields...)
	case *models.PhoneFields:
		return v.validateNumber(value.Number, fields...)

	case models.SMSFields:
		return v.validateNumber(value.Number, fields...)
	case *models.SMSFields:
		return v.validateNumber(value.Number, fields...)

	case models.GeoFields:
		return v.validateGeo(value, fields...)
	case *models.GeoFields:
		return v.validateGeo(*value, fields...)

	case models.URLFields:
		return v.validateURL(value, fields...)
	case *models.URLFields:
		return v.validateURL(*value, fields...)

	case models.TextFields:
		return v.validateText(value, fields...)
	case *models.TextFields:
		return v.validateText(*value, fields...)

	case models.GenerateOptions:
		return v.validateOptions(value, fields...)
	case *models.GenerateOptions:
		return v.validateOptions(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FieldSetValidator) validateWiFi(fs models.WiFiFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSSID, FieldAuth}
	}

	for _, f := range fields {
		switch f {
		case FieldSSID:
			if blank(fs.SSID) {
				return ErrEmptySSID
			}
		case FieldAuth:
			if !validWiFiAuth(fs.Auth) {
				return ErrInvalidWiFiAuth
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateContact requires at least one of name, email or phone.
func (v *FieldSetValidator) validateContact(fs models.ContactFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentity}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentity:
			if blank(fs.First) && blank(fs.Last) && blank(fs.Email) && blank(fs.Phone) {
				return ErrEmptyContact
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FieldSetValidator) validateEmail(fs models.EmailFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAddress}
	}

	for _, f := range fields {
		switch f {
		case FieldAddress:
			if blank(fs.Address) {
				return ErrEmptyEmailAddress
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNumber serves both phone and sms: the number must contain a digit,
// because the builder strips everything else.
func (v *FieldSetValidator) validateNumber(number string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNumber}
	}

	for _, f := range fields {
		switch f {
		case FieldNumber:
			if strings.IndexFunc(number, isDigit) < 0 {
				return ErrEmptyPhoneNumber
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FieldSetValidator) validateGeo(fs models.GeoFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCoordinates}
	}

	for _, f := range fields {
		switch f {
		case FieldCoordinates:
			if blank(fs.Latitude) || blank(fs.Longitude) {
				return ErrEmptyCoordinates
			}
			if !inRange(fs.Latitude, 90) || !inRange(fs.Longitude, 180) {
				return ErrInvalidCoordinates
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FieldSetValidator) validateURL(fs models.URLFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldURL:
			if blank(fs.URL) {
				return ErrEmptyURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FieldSetValidator) validateText(fs models.TextFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if blank(fs.Text) {
				return ErrEmptyText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FieldSetValidator) validateOptions(opts models.GenerateOptions, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldErrorCorrectionLevel, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldErrorCorrectionLevel:
			if opts.ErrorCorrectionLevel == "" {
				continue
			}
			if _, ok := models.ParseErrorCorrectionLevel(string(opts.ErrorCorrectionLevel)); !ok {
				return ErrInvalidECL
			}
		case FieldSize:
			if opts.Size < 0 {
				return ErrInvalidSize
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validWiFiAuth accepts the auth modes case-insensitively, as the builder
// does. Blank means WPA.
func validWiFiAuth(auth string) bool {
	auth = strings.TrimSpace(auth)
	if auth == "" {
		return true
	}
	for _, mode := range []string{models.WiFiAuthWPA, models.WiFiAuthWEP, models.WiFiAuthNoPass} {
		if strings.EqualFold(auth, mode) {
			return true
		}
	}
	return false
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// inRange reports whether s parses as a number within [-limit, limit].
func inRange(s string, limit float64) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return false
	}
	return f >= -limit && f <= limit
}
