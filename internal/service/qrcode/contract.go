//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=qrcode_test
package qrcode

import (
	"context"

	"pickuppoint/internal/entities"
)

type Repository interface {
	Update(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error)
}
