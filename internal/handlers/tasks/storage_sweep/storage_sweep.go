package storage_sweep

import (
	"context"
	"time"

	"pickuppoint/internal/service/pickup"
	"pickuppoint/pkg/logger"
)

type Service interface {
	RunStorageExpirationSweep(ctx context.Context, opts pickup.SweepOptions) (pickup.SweepResult, error)
}

type StorageSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	opts     pickup.SweepOptions
}

func NewStorageSweep(log logger.Logger, service Service, interval time.Duration, opts pickup.SweepOptions) *StorageSweep {
	return &StorageSweep{
		log:      log,
		service:  service,
		interval: interval,
		opts:     opts,
	}
}

func (s *StorageSweep) TTL() time.Duration {
	return s.interval
}

func (s *StorageSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	result, err := s.service.RunStorageExpirationSweep(ctxWithTimeout, s.opts)

	if result.Warned > 0 || result.Expired > 0 {
		s.log.With(
			logger.NewField("processed", result.Processed),
			logger.NewField("warned", result.Warned),
			logger.NewField("expired", result.Expired),
		).Info("storage expiration sweep")
	}

	return err
}

func (s *StorageSweep) Info() string {
	return "storage expiration sweep"
}
