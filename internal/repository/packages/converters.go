package packages

import (
	"pickuppoint/internal/entities"
)

func ToDomain(p *PackageDB) *entities.Package {
	if p == nil {
		return nil
	}

	pkg := &entities.Package{
		ID:               p.ID,
		Tracking:         p.Tracking,
		CustomerName:     p.CustomerName,
		CustomerPhone:    p.CustomerPhone,
		CourierID:        p.CourierID,
		PickupLocationID: p.PickupLocationID,
		Status:           entities.PackageStatusType(p.Status),
		ExpectedAt:       p.ExpectedAt,
		ArchivedAt:       p.ArchivedAt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}

	if p.CustomerEmail != nil {
		pkg.CustomerEmail = *p.CustomerEmail
	}
	if p.QrCodePath != nil {
		pkg.QrCodePath = *p.QrCodePath
	}
	if p.SignaturePath != nil {
		pkg.SignaturePath = *p.SignaturePath
	}
	if p.PhotoPath != nil {
		pkg.PhotoPath = *p.PhotoPath
	}
	if p.Notes != nil {
		pkg.Notes = *p.Notes
	}

	return pkg
}

func FromDomainModify(packageModify *entities.PackageModify) *PackageModifyDB {
	if packageModify == nil {
		return nil
	}
	packageDB := &PackageModifyDB{
		ID:               packageModify.ID,
		Tracking:         packageModify.Tracking,
		CustomerName:     packageModify.CustomerName,
		CustomerPhone:    packageModify.CustomerPhone,
		CustomerEmail:    packageModify.CustomerEmail,
		CourierID:        packageModify.CourierID,
		PickupLocationID: packageModify.PickupLocationID,
		ExpectedAt:       packageModify.ExpectedAt,
		ArchivedAt:       packageModify.ArchivedAt,
		QrCodePath:       packageModify.QrCodePath,
		SignaturePath:    packageModify.SignaturePath,
		PhotoPath:        packageModify.PhotoPath,
		Notes:            packageModify.Notes,
	}

	if packageModify.Status != nil {
		status := packageModify.Status.String()
		packageDB.Status = &status
	}

	return packageDB
}

func ToDomainList(packagesDB []PackageDB) []entities.Package {
	if len(packagesDB) == 0 {
		return []entities.Package{}
	}

	result := make([]entities.Package, len(packagesDB))
	for i, packageDB := range packagesDB {
		result[i] = *ToDomain(&packageDB)
	}
	return result
}
