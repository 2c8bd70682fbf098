package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySSID          = errors.New("network name is required")
	ErrInvalidWiFiAuth    = errors.New("authentication must be WPA, WEP or nopass")
	ErrEmptyContact       = errors.New("contact needs a name, email or phone")
	ErrEmptyEmailAddress  = errors.New("email address is required")
	ErrEmptyPhoneNumber   = errors.New("phone number is required")
	ErrEmptyCoordinates   = errors.New("latitude and longitude are required")
	ErrInvalidCoordinates = errors.New("coordinates are out of range")
	ErrEmptyURL           = errors.New("url is required")
	ErrEmptyText          = errors.New("text is required")
	ErrInvalidECL         = errors.New("error correction level must be one of L, M, Q, H")
	ErrInvalidSize        = errors.New("image size must be positive")
)
