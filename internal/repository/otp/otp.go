package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"pickuppoint/internal/entities"
	otpservice "pickuppoint/internal/service/otp"
)

const otpColumns = `id, package_id, code_hash, expires_at, attempts, max_attempts, consumed_at, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, packageID int64, codeHash string, expiresAt time.Time, maxAttempts int) (int64, error) {
	query := `INSERT INTO otps (package_id, code_hash, expires_at, max_attempts)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(ctx, query, packageID, codeHash, expiresAt, maxAttempts).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected otp repository create error: %w", err)
	}

	return id, nil
}

// ExpireActive immediately expires every still-active OTP of the package.
// Runs in the same transaction as the insert of the replacement code, so a
// stale code is never accepted alongside a fresh one.
func (r *Repository) ExpireActive(ctx context.Context, packageID int64) (int64, error) {
	query := `
		UPDATE otps
		SET expires_at = NOW()
		WHERE package_id = $1
		  AND consumed_at IS NULL
		  AND expires_at > NOW()
	`

	result, err := r.querier.Exec(ctx, query, packageID)
	if err != nil {
		return 0, fmt.Errorf("unexpected otp repository expire error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) GetActive(ctx context.Context, packageID int64) (*entities.Otp, error) {
	query := `SELECT ` + otpColumns + `
		FROM otps
		WHERE package_id = $1
		  AND consumed_at IS NULL
		  AND expires_at > NOW()
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	var otpModel OtpDB
	err := r.querier.QueryRow(ctx, query, packageID).Scan(
		&otpModel.ID,
		&otpModel.PackageID,
		&otpModel.CodeHash,
		&otpModel.ExpiresAt,
		&otpModel.Attempts,
		&otpModel.MaxAttempts,
		&otpModel.ConsumedAt,
		&otpModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, otpservice.ErrNoActiveOtp
		}

		return nil, fmt.Errorf("unexpected otp repository get active error: %w", err)
	}

	return ToDomain(&otpModel), nil
}

// IncrementAttempts spends one verification attempt. The guard on
// max_attempts is part of the statement, so concurrent verifications can
// never push the counter past the ceiling or lose an increment.
func (r *Repository) IncrementAttempts(ctx context.Context, otpID int64) (int, error) {
	query := `
		UPDATE otps
		SET attempts = attempts + 1
		WHERE id = $1
		  AND attempts < max_attempts
		RETURNING attempts
	`

	var attempts int
	err := r.querier.QueryRow(ctx, query, otpID).Scan(&attempts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, otpservice.ErrMaxAttemptsExceeded
		}
		return 0, fmt.Errorf("unexpected otp repository increment error: %w", err)
	}

	return attempts, nil
}

func (r *Repository) Consume(ctx context.Context, otpID int64) error {
	query := `
		UPDATE otps
		SET consumed_at = NOW()
		WHERE id = $1
		  AND consumed_at IS NULL
	`

	result, err := r.querier.Exec(ctx, query, otpID)
	if err != nil {
		return fmt.Errorf("unexpected otp repository consume error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return otpservice.ErrNoActiveOtp
	}

	return nil
}
