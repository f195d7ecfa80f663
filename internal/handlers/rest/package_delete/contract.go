//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_delete_test
package package_delete

import (
	"context"

	"pickuppoint/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeletePackage(ctx context.Context, id int64) error
}
