//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=confirm_post_test
package confirm_post

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
	ConfirmPickup(ctx context.Context, id int64, input string, actorID *int64) (*entities.Package, error)
}
