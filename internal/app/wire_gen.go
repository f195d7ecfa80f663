// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"pickuppoint/internal/gateway/email"
	"pickuppoint/internal/gateway/whatsapp"
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
	"pickuppoint/internal/repository/history"
	"pickuppoint/internal/repository/notification"
	"pickuppoint/internal/repository/otp"
	"pickuppoint/internal/repository/packages"
	"pickuppoint/internal/service/notify"
	otp2 "pickuppoint/internal/service/otp"
	"pickuppoint/internal/service/pickup"
	"pickuppoint/internal/service/qrcode"
	"pickuppoint/pkg/background"
	"pickuppoint/pkg/logger"
	"pickuppoint/pkg/querier"
	"pickuppoint/pkg/tx"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := providePackagesRepository(querier)
	historyRepository := provideHistoryRepository(querier)
	notificationRepository := provideNotificationRepository(querier)
	otpRepository := provideOtpRepository(querier)
	manager := provideTxManager(pool)
	authority := provideOtpAuthority(otpRepository, manager)
	gateway := provideEmailGateway(cfg)
	whatsappGateway := provideWhatsappGateway(cfg)
	generator := provideQrGenerator(repository, cfg)
	dispatcher := provideNotifyDispatcher(log, gateway, whatsappGateway, notificationRepository, historyRepository, generator)
	service := provideServicePickup(repository, historyRepository, notificationRepository, authority, dispatcher, generator, manager, log, cfg)
	storageSweep := provideStorageSweepTask(log, service, cfg)
	packageArchive := providePackageArchiveTask(log, service, cfg)
	v := provideTaskList(storageSweep, packageArchive)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServicePickup:     service,
		BackgroundWorkers: worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-package-inbound)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*KafkaWorkerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := providePackagesRepository(querier)
	historyRepository := provideHistoryRepository(querier)
	notificationRepository := provideNotificationRepository(querier)
	otpRepository := provideOtpRepository(querier)
	manager := provideTxManager(pool)
	authority := provideOtpAuthority(otpRepository, manager)
	gateway := provideEmailGateway(cfg)
	whatsappGateway := provideWhatsappGateway(cfg)
	generator := provideQrGenerator(repository, cfg)
	dispatcher := provideNotifyDispatcher(log, gateway, whatsappGateway, notificationRepository, historyRepository, generator)
	service := provideServicePickup(repository, historyRepository, notificationRepository, authority, dispatcher, generator, manager, log, cfg)
	kafkaWorkerApp := &KafkaWorkerApp{
		PickupService: service,
	}
	return kafkaWorkerApp, nil
}

// wire.go:

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

type KafkaWorkerApp struct {
	PickupService *pickup.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func providePackagesRepository(querier2 *querier.Querier) *packages.Repository {
	return packages.New(querier2)
}

func provideOtpRepository(querier2 *querier.Querier) *otp.Repository {
	return otp.New(querier2)
}

func provideHistoryRepository(querier2 *querier.Querier) *history.Repository {
	return history.New(querier2)
}

func provideNotificationRepository(querier2 *querier.Querier) *notification.Repository {
	return notification.New(querier2)
}

func provideEmailGateway(cfg *config.Config) *email.Gateway {
	return email.New(email.Config{
		BaseURL: cfg.Email.BaseURL,
		APIKey:  cfg.Email.APIKey,
		From:    cfg.Email.From,
	})
}

func provideWhatsappGateway(cfg *config.Config) *whatsapp.Gateway {
	return whatsapp.New(whatsapp.Config{
		BaseURL:    cfg.Whatsapp.BaseURL,
		AccountSID: cfg.Whatsapp.AccountSID,
		AuthToken:  cfg.Whatsapp.AuthToken,
		From:       cfg.Whatsapp.From,
	})
}

func provideQrGenerator(repository *packages.Repository, cfg *config.Config) *qrcode.Generator {
	return qrcode.New(repository, cfg.Qr.PublicBaseURL, cfg.Qr.ArtifactsDir)
}

func provideOtpAuthority(repository *otp.Repository, txManager *tx.Manager) *otp2.Authority {
	return otp2.New(repository, txManager)
}

func provideNotifyDispatcher(
	log logger.Logger, email2 *email.Gateway, whatsapp2 *whatsapp.Gateway,
	notificationLog *notification.Repository,
	ledger *history.Repository,
	qr *qrcode.Generator,
) *notify.Dispatcher {
	return notify.NewDispatcher(log, email2, whatsapp2, notificationLog, ledger, qr)
}

func provideServicePickup(
	repository *packages.Repository,
	ledger *history.Repository,
	notificationLog *notification.Repository,
	otps *otp2.Authority,
	notifier *notify.Dispatcher,
	qr *qrcode.Generator,
	txManager *tx.Manager,
	log logger.Logger,
	cfg *config.Config,
) *pickup.Service {
	return pickup.New(
		repository,
		ledger,
		notificationLog,
		otps,
		notifier,
		qr,
		txManager,
		log, otp2.IssueOptions{
			Length:      cfg.Otp.Length,
			TTL:         cfg.Otp.TTL,
			MaxAttempts: cfg.Otp.MaxAttempts,
		},
	)
}

func provideStorageSweepTask(
	log logger.Logger,
	service *pickup.Service,
	cfg *config.Config,
) *storage_sweep.StorageSweep {
	return storage_sweep.NewStorageSweep(
		log,
		service,
		cfg.Tasks.StorageSweepInterval, pickup.SweepOptions{
			GraceDays:   cfg.Tasks.StorageGraceDays,
			WarningDays: cfg.Tasks.StorageWarningDays,
		},
	)
}

func providePackageArchiveTask(
	log logger.Logger,
	service *pickup.Service,
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
