package otp

import (
	"pickuppoint/internal/entities"
)

func ToDomain(o *OtpDB) *entities.Otp {
	if o == nil {
		return nil
	}
	return &entities.Otp{
		ID:          o.ID,
		PackageID:   o.PackageID,
		CodeHash:    o.CodeHash,
		ExpiresAt:   o.ExpiresAt,
		Attempts:    o.Attempts,
		MaxAttempts: o.MaxAttempts,
		ConsumedAt:  o.ConsumedAt,
		CreatedAt:   o.CreatedAt,
	}
}
