package packages

import "time"

type PackageDB struct {
	ID               int64
	Tracking         string
	CustomerName     string
	CustomerPhone    string
	CustomerEmail    *string
	CourierID        *int64
	PickupLocationID *int64
	Status           string
	ExpectedAt       *time.Time
	ArchivedAt       *time.Time
	QrCodePath       *string
	SignaturePath    *string
	PhotoPath        *string
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type PackageModifyDB struct {
	ID               *int64
	Tracking         *string
	CustomerName     *string
	CustomerPhone    *string
	CustomerEmail    *string
	CourierID        *int64
	PickupLocationID *int64
	Status           *string
	ExpectedAt       *time.Time
	ArchivedAt       *time.Time
	QrCodePath       *string
	SignaturePath    *string
	PhotoPath        *string
	Notes            *string
}
