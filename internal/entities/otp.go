package entities

import "time"

type Otp struct {
	ID          int64
	PackageID   int64
	CodeHash    string
	ExpiresAt   time.Time
	Attempts    int
	MaxAttempts int
	ConsumedAt  *time.Time
	CreatedAt   time.Time
}

// Active reports whether the OTP can still be presented for verification.
func (o *Otp) Active(now time.Time) bool {
	return o.ConsumedAt == nil && o.ExpiresAt.After(now)
}

type OtpIssue struct {
	OtpID     int64
	Code      string
	ExpiresAt time.Time
}
