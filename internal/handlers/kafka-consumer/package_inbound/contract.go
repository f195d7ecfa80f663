package package_inbound

import (
	"context"

	"pickuppoint/internal/entities"
	"pickuppoint/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreatePackage(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error)
}
