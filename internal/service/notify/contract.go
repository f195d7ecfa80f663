//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notify_test
package notify

import (
	"context"

	"pickuppoint/internal/entities"
	"pickuppoint/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type EmailGateway interface {
	Configured() bool
	Send(ctx context.Context, recipient, subject, htmlBody string) error
}

type WhatsappGateway interface {
	Configured() bool
	Send(ctx context.Context, phone, message string) error
}

type NotificationLog interface {
	Append(ctx context.Context, entry entities.NotificationEntry) (int64, error)
}

type Ledger interface {
	Append(ctx context.Context, entry entities.HistoryEntry) (int64, error)
}

type QrGenerator interface {
	ConfirmURL(packageID int64) string
	Generate(ctx context.Context, packageID int64) (string, error)
}
