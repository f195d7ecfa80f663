//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=history_get_test
package history_get

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
	GetPackageHistory(ctx context.Context, id int64, limit uint64) ([]entities.HistoryEntry, error)
}
