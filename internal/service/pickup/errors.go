package pickup

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatus         = errors.New("invalid package status")
	ErrInvalidEmail          = errors.New("invalid email address")
	ErrInvalidPhone          = errors.New("invalid phone number")

	ErrPackageNotFound   = errors.New("package not found")
	ErrDuplicateTracking = errors.New("tracking number already exists")
	ErrQrMismatch        = errors.New("qr code does not match package")
)
