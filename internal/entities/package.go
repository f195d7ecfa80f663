package entities

import (
	"time"
)

type Package struct {
	ID               int64
	Tracking         string
	CustomerName     string
	CustomerPhone    string
	CustomerEmail    string
	CourierID        *int64
	PickupLocationID *int64
	Status           PackageStatusType
	ExpectedAt       *time.Time
	ArchivedAt       *time.Time
	QrCodePath       string
	SignaturePath    string
	PhotoPath        string
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type PackageStatusType string

const (
	PackageInArrivo          PackageStatusType = "in_arrivo"
	PackageConsegnato        PackageStatusType = "consegnato"
	PackageRitirato          PackageStatusType = "ritirato"
	PackageInGiacenza        PackageStatusType = "in_giacenza"
	PackageInGiacenzaScaduto PackageStatusType = "in_giacenza_scaduto"
)

const DefaultPackageStatus = PackageInArrivo

func (s PackageStatusType) String() string {
	return string(s)
}

type PackageModify struct {
	ID               *int64
	Tracking         *string
	CustomerName     *string
	CustomerPhone    *string
	CustomerEmail    *string
	CourierID        *int64
	PickupLocationID *int64
	Status           *PackageStatusType
	ExpectedAt       *time.Time
	ArchivedAt       *time.Time
	QrCodePath       *string
	SignaturePath    *string
	PhotoPath        *string
	Notes            *string
}

type PackageFilter struct {
	Status           *PackageStatusType
	CourierID        *int64
	PickupLocationID *int64
	CreatedFrom      *time.Time
	CreatedTo        *time.Time
	Search           string
	IncludeArchived  bool
	Limit            uint64
	Offset           uint64
}

// StorageReferenceTime is the date the storage grace period counts from:
// the earliest known moment the package could have entered the location.
func (p *Package) StorageReferenceTime() time.Time {
	ref := p.CreatedAt
	if p.UpdatedAt.Before(ref) {
		ref = p.UpdatedAt
	}
	if p.ExpectedAt != nil && p.ExpectedAt.Before(ref) {
		ref = *p.ExpectedAt
	}
	return ref
}
