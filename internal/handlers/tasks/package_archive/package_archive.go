package package_archive

import (
	"context"
	"time"

	"pickuppoint/pkg/logger"
)

type Service interface {
	ArchiveDeliveredPackages(ctx context.Context, olderThanDays int) (int64, error)
}

type PackageArchive struct {
	log           logger.Logger
	service       Service
	interval      time.Duration
	olderThanDays int
}

func NewPackageArchive(log logger.Logger, service Service, interval time.Duration, olderThanDays int) *PackageArchive {
	return &PackageArchive{
		log:           log,
		service:       service,
		interval:      interval,
		olderThanDays: olderThanDays,
	}
}

func (p *PackageArchive) TTL() time.Duration {
	return p.interval
}

func (p *PackageArchive) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	archived, err := p.service.ArchiveDeliveredPackages(ctxWithTimeout, p.olderThanDays)

	if archived > 0 {
		p.log.With(
			logger.NewField("archived_packages", archived),
		).Info("package archive")
	}

	return err
}

func (p *PackageArchive) Info() string {
	return "package archive"
}
