//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=otp_post_test
package otp_post

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
	IssueOtp(ctx context.Context, id int64, actorID *int64) (*entities.OtpIssue, error)
}
