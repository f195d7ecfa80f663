//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_status_put_test
package package_status_put

import (
	"context"

	"pickuppoint/internal/entities"
	"pickuppoint/internal/service/pickup"
	"pickuppoint/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdatePackageStatus(ctx context.Context, id int64, status entities.PackageStatusType, opts pickup.StatusChangeOptions) (*entities.Package, error)
}
