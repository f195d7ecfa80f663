//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=otp_test
package otp

import (
	"context"
	"time"

	"pickuppoint/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, packageID int64, codeHash string, expiresAt time.Time, maxAttempts int) (int64, error)
	ExpireActive(ctx context.Context, packageID int64) (int64, error)
	GetActive(ctx context.Context, packageID int64) (*entities.Otp, error)
	IncrementAttempts(ctx context.Context, otpID int64) (int, error)
	Consume(ctx context.Context, otpID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
