package otp

import "time"

type OtpDB struct {
	ID          int64
	PackageID   int64
	CodeHash    string
	ExpiresAt   time.Time
	Attempts    int
	MaxAttempts int
	ConsumedAt  *time.Time
	CreatedAt   time.Time
}
