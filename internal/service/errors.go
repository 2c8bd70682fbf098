package service

import "errors"

var (
	ErrEmptyPayload     = errors.New("empty payload")
	ErrNothingToEncode  = errors.New("nothing to encode")
	ErrUnsupportedKind  = errors.New("unsupported content kind")
	ErrInvalidImageSize = errors.New("invalid image size")
	ErrInvalidFields    = errors.New("invalid fields")
	ErrInvalidOptions   = errors.New("invalid generate options")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
