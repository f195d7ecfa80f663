package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
	"pickuppoint/internal/entities"
)

const (
	DefaultLength      = 6
	DefaultTTL         = 24 * time.Hour
	DefaultMaxAttempts = 5

	minLength = 4
	maxLength = 10
)

// IssueOptions tunes a single code issue. Zero values fall back to the
// defaults above.
type IssueOptions struct {
	Length      int
	TTL         time.Duration
	MaxAttempts int
}

// Authority owns the one-time pickup codes: it generates them from a
// cryptographically secure source, stores only bcrypt hashes and enforces
// the attempts ceiling. The plaintext code leaves Issue exactly once and is
// never persisted.
type Authority struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Authority {
	return &Authority{
		repository: repository,
		txManager:  txManager,
	}
}

// Issue mints a fresh code for the package and immediately expires every
// prior active code, so exactly one code is honored at verification time.
func (a *Authority) Issue(ctx context.Context, packageID int64, opts IssueOptions) (*entities.OtpIssue, error) {
	length := opts.Length
	if length == 0 {
		length = DefaultLength
	}
	if length < minLength || length > maxLength {
		return nil, fmt.Errorf("otp length %d out of range [%d, %d]", length, minLength, maxLength)
	}

	ttl := opts.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = DefaultMaxAttempts
	}

	code, err := generateCode(length)
	if err != nil {
		return nil, fmt.Errorf("generate otp code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash otp code: %w", err)
	}

	expiresAt := time.Now().UTC().Add(ttl)

	var otpID int64
	err = a.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := a.repository.ExpireActive(ctx, packageID)
		if err != nil {
			return fmt.Errorf("expire previous otps: %w", err)
		}

		otpID, err = a.repository.Create(ctx, packageID, string(hash), expiresAt, maxAttempts)
		if err != nil {
			return fmt.Errorf("create otp: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entities.OtpIssue{
		OtpID:     otpID,
		Code:      code,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify checks a candidate code against the package's active OTP. Every
// comparison costs one attempt, the successful one included; the response
// never distinguishes a malformed candidate from a wrong one.
//
// Verify deliberately runs outside a transaction: a spent attempt must
// survive a failed verification, and every statement it issues is atomic
// on its own (the ceiling guard lives inside the increment).
func (a *Authority) Verify(ctx context.Context, packageID int64, candidate string) (*entities.Otp, error) {
	active, err := a.repository.GetActive(ctx, packageID)
	if err != nil {
		if errors.Is(err, ErrNoActiveOtp) {
			return nil, err
		}
		return nil, fmt.Errorf("get active otp: %w", err)
	}

	// expiry is checked at use time, not at fetch time
	if !active.Active(time.Now().UTC()) {
		return nil, ErrNoActiveOtp
	}

	attempts, err := a.repository.IncrementAttempts(ctx, active.ID)
	if err != nil {
		if errors.Is(err, ErrMaxAttemptsExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("increment attempts: %w", err)
	}
	active.Attempts = attempts

	if bcrypt.CompareHashAndPassword([]byte(active.CodeHash), []byte(candidate)) != nil {
		return nil, ErrInvalidCode
	}

	err = a.repository.Consume(ctx, active.ID)
	if err != nil {
		return nil, fmt.Errorf("consume otp: %w", err)
	}

	now := time.Now().UTC()
	active.ConsumedAt = &now
	return active, nil
}

func generateCode(length int) (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", length, n), nil
}
