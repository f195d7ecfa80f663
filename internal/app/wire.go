//go:build wireinject
// +build wireinject

package app

import (
	"context"

	emailGateway "pickuppoint/internal/gateway/email"
	whatsappGateway "pickuppoint/internal/gateway/whatsapp"
	"pickuppoint/internal/handlers/rest/confirm_post"
	"pickuppoint/internal/handlers/rest/history_get"
	"pickuppoint/internal/handlers/rest/notifications_get"
	"pickuppoint/internal/handlers/rest/otp_post"
	"pickuppoint/internal/handlers/rest/package_delete"
	"pickuppoint/internal/handlers/rest/package_get"
	"pickuppoint/internal/handlers/rest/package_post"
	"pickuppoint/internal/handlers/rest/package_put"
	"pickuppoint/internal/handlers/rest/package_status_put"
	"pickuppoint/internal/handlers/rest/packages_get"
	"pickuppoint/internal/handlers/tasks/package_archive"
	"pickuppoint/internal/handlers/tasks/storage_sweep"
	"pickuppoint/internal/pkg/config"

	historyRepo "pickuppoint/internal/repository/history"
	notificationRepo "pickuppoint/internal/repository/notification"
	otpRepo "pickuppoint/internal/repository/otp"
	packagesRepo "pickuppoint/internal/repository/packages"
	notifyService "pickuppoint/internal/service/notify"
	otpService "pickuppoint/internal/service/otp"
	pickupService "pickuppoint/internal/service/pickup"
	qrcodeService "pickuppoint/internal/service/qrcode"

	"pickuppoint/pkg/background"
	"pickuppoint/pkg/logger"
	"pickuppoint/pkg/querier"
	"pickuppoint/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServicePickup     ServicePickup
	BackgroundWorkers *background.Worker
}

type ServicePickup interface {
	package_post.Service
	packages_get.Service
	package_get.Service
	package_put.Service
	package_status_put.Service
	package_delete.Service
	otp_post.Service
	confirm_post.Service
	history_get.Service
	notifications_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		providePackagesRepository,
		provideOtpRepository,
		provideHistoryRepository,
		provideNotificationRepository,

		provideEmailGateway,
		provideWhatsappGateway,

		provideQrGenerator,
		provideOtpAuthority,
		provideNotifyDispatcher,
		provideServicePickup,

		provideStorageSweepTask,
		providePackageArchiveTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServicePickup), new(*pickupService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	PickupService *pickupService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-package-inbound)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		providePackagesRepository,
		provideOtpRepository,
		provideHistoryRepository,
		provideNotificationRepository,

		provideEmailGateway,
		provideWhatsappGateway,

		provideQrGenerator,
		provideOtpAuthority,
		provideNotifyDispatcher,
		provideServicePickup,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func providePackagesRepository(querier *querier.Querier) *packagesRepo.Repository {
	return packagesRepo.New(querier)
}

func provideOtpRepository(querier *querier.Querier) *otpRepo.Repository {
	return otpRepo.New(querier)
}

func provideHistoryRepository(querier *querier.Querier) *historyRepo.Repository {
	return historyRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideEmailGateway(cfg *config.Config) *emailGateway.Gateway {
	return emailGateway.New(emailGateway.Config{
		BaseURL: cfg.Email.BaseURL,
		APIKey:  cfg.Email.APIKey,
		From:    cfg.Email.From,
	})
}

func provideWhatsappGateway(cfg *config.Config) *whatsappGateway.Gateway {
	return whatsappGateway.New(whatsappGateway.Config{
		BaseURL:    cfg.Whatsapp.BaseURL,
		AccountSID: cfg.Whatsapp.AccountSID,
		AuthToken:  cfg.Whatsapp.AuthToken,
		From:       cfg.Whatsapp.From,
	})
}

func provideQrGenerator(repository *packagesRepo.Repository, cfg *config.Config) *qrcodeService.Generator {
	return qrcodeService.New(repository, cfg.Qr.PublicBaseURL, cfg.Qr.ArtifactsDir)
}

func provideOtpAuthority(repository *otpRepo.Repository, txManager *tx.Manager) *otpService.Authority {
	return otpService.New(repository, txManager)
}

func provideNotifyDispatcher(
	log logger.Logger,
	email *emailGateway.Gateway,
	whatsapp *whatsappGateway.Gateway,
	notificationLog *notificationRepo.Repository,
	ledger *historyRepo.Repository,
	qr *qrcodeService.Generator,
) *notifyService.Dispatcher {
	return notifyService.NewDispatcher(log, email, whatsapp, notificationLog, ledger, qr)
}

func provideServicePickup(
	repository *packagesRepo.Repository,
	ledger *historyRepo.Repository,
	notificationLog *notificationRepo.Repository,
	otps *otpService.Authority,
	notifier *notifyService.Dispatcher,
	qr *qrcodeService.Generator,
	txManager *tx.Manager,
	log logger.Logger,
	cfg *config.Config,
) *pickupService.Service {
	return pickupService.New(
		repository,
		ledger,
		notificationLog,
		otps,
		notifier,
		qr,
		txManager,
		log,
		otpService.IssueOptions{
			Length:      cfg.Otp.Length,
			TTL:         cfg.Otp.TTL,
			MaxAttempts: cfg.Otp.MaxAttempts,
		},
	)
}

func provideStorageSweepTask(
	log logger.Logger,
	service *pickupService.Service,
	cfg *config.Config,
) *storage_sweep.StorageSweep {
	return storage_sweep.NewStorageSweep(
		log,
		service,
		cfg.Tasks.StorageSweepInterval,
		pickupService.SweepOptions{
			GraceDays:   cfg.Tasks.StorageGraceDays,
			WarningDays: cfg.Tasks.StorageWarningDays,
		},
	)
}

func providePackageArchiveTask(
	log logger.Logger,
	service *pickupService.Service,
	cfg *config.Config,
) *package_archive.PackageArchive {
	return package_archive.NewPackageArchive(
		log,
		service,
		cfg.Tasks.PackageArchiveInterval,
		cfg.Tasks.ArchiveAfterDays,
	)
}

func provideTaskList(
	storageSweepTask *storage_sweep.StorageSweep,
	packageArchiveTask *package_archive.PackageArchive,
) []background.Task {
	return []background.Task{
		storageSweepTask,
		packageArchiveTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
