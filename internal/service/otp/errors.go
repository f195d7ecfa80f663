package otp

import "errors"

var (
	ErrNoActiveOtp         = errors.New("no active otp")
	ErrMaxAttemptsExceeded = errors.New("max verification attempts exceeded")
	ErrInvalidCode         = errors.New("invalid code")
)
