package pickup

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"

	"pickuppoint/internal/entities"
	"pickuppoint/internal/service/notify"
	"pickuppoint/internal/service/otp"
	"pickuppoint/internal/service/qrcode"
	"pickuppoint/pkg/logger"
)

const (
	DefaultStorageGraceDays   = 15
	DefaultStorageWarningDays = 3
	DefaultArchiveAfterDays   = 30
)

// Service drives the package lifecycle: admission, status transitions,
// confirmed pickups, storage expiration and archival. Core row mutations
// are transactional; notifications, QR artifacts and audit side effects
// run after commit and degrade gracefully.
type Service struct {
	repository      Repository
	ledger          Ledger
	notificationLog NotificationLog
	otps            OtpAuthority
	notifier        Notifier
	qr              QrGenerator
	txManager       TxManager
	logger          serviceLogger
	otpOptions      otp.IssueOptions
}

func New(
	repository Repository,
	ledger Ledger,
	notificationLog NotificationLog,
	otps OtpAuthority,
	notifier Notifier,
	qr QrGenerator,
	txManager TxManager,
	l logger.Logger,
	otpOptions otp.IssueOptions,
) *Service {
	return &Service{
		repository:      repository,
		ledger:          ledger,
		notificationLog: notificationLog,
		otps:            otps,
		notifier:        notifier,
		qr:              qr,
		txManager:       txManager,
		logger:          l.With(logger.NewField("service", "pickup")),
		otpOptions:      otpOptions,
	}
}

// StatusChangeOptions tunes a single transition. DefaultStatusChangeOptions
// is what the HTTP and task callers start from.
type StatusChangeOptions struct {
	AutoNotify  bool
	GenerateOtp bool
	ActorID     *int64
}

func DefaultStatusChangeOptions() StatusChangeOptions {
	return StatusChangeOptions{
		AutoNotify:  true,
		GenerateOtp: true,
	}
}

func (s *Service) CreatePackage(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error) {
	if packageModify.Tracking == nil || packageModify.CustomerName == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidName(*packageModify.Tracking) || !isValidName(*packageModify.CustomerName) {
		return nil, ErrMissingRequiredFields
	}
	if err := validateContacts(packageModify); err != nil {
		return nil, err
	}
	if packageModify.Status == nil {
		packageModify.Status = pointer.To(entities.DefaultPackageStatus)
	}
	if !isValidStatus(*packageModify.Status) {
		return nil, ErrInvalidStatus
	}

	var created *entities.Package
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, packageModify)
		if err != nil {
			return fmt.Errorf("create package: %w", err)
		}

		_, err = s.ledger.Append(ctx, entities.HistoryEntry{
			PackageID: created.ID,
			EventType: entities.HistoryCreated,
			NewStatus: pointer.To(created.Status),
		})
		if err != nil {
			return fmt.Errorf("append created history: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if created.Status == entities.PackageInArrivo {
		issue := s.issueOtp(ctx, created, nil)
		s.notifyEvent(ctx, created, entities.NotifyArrived, issueContext(issue))
	}

	return created, nil
}

func (s *Service) UpdatePackageStatus(
	ctx context.Context,
	id int64,
	status entities.PackageStatusType,
	opts StatusChangeOptions,
) (*entities.Package, error) {
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	updated, changed, err := s.transition(ctx, id, status, entities.HistoryStatusChange, opts.ActorID, nil)
	if err != nil {
		return nil, err
	}
	if !changed || !opts.AutoNotify {
		return updated, nil
	}

	switch status {
	case entities.PackageInArrivo:
		var issue *entities.OtpIssue
		if opts.GenerateOtp {
			issue = s.issueOtp(ctx, updated, opts.ActorID)
		}
		s.notifyEvent(ctx, updated, entities.NotifyArrived, issueContext(issue))
	case entities.PackageRitirato:
		s.notifyEvent(ctx, updated, entities.NotifyPickedUp, notify.Context{})
	case entities.PackageInGiacenzaScaduto:
		s.notifyEvent(ctx, updated, entities.NotifyStorageExpired, notify.Context{})
	}

	return updated, nil
}

func (s *Service) UpdatePackage(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error) {
	if packageModify.ID == nil {
		return nil, fmt.Errorf("package id is required: %w", ErrMissingRequiredFields)
	}
	if packageModify.Tracking == nil &&
		packageModify.CustomerName == nil &&
		packageModify.CustomerPhone == nil &&
		packageModify.CustomerEmail == nil &&
		packageModify.CourierID == nil &&
		packageModify.PickupLocationID == nil &&
		packageModify.ExpectedAt == nil &&
		packageModify.Notes == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if packageModify.Tracking != nil && !isValidName(*packageModify.Tracking) {
		return nil, ErrMissingRequiredFields
	}
	if packageModify.CustomerName != nil && !isValidName(*packageModify.CustomerName) {
		return nil, ErrMissingRequiredFields
	}
	if err := validateContacts(packageModify); err != nil {
		return nil, err
	}
	// Транзишены статусов идут только через UpdatePackageStatus.
	packageModify.Status = nil

	updated, err := s.repository.Update(ctx, packageModify)
	if err != nil {
		return nil, fmt.Errorf("update package: %w", err)
	}

	return updated, nil
}

func (s *Service) DeletePackage(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	return nil
}

func (s *Service) GetPackage(ctx context.Context, id int64) (*entities.Package, error) {
	pkg, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}
	return pkg, nil
}

func (s *Service) GetPackageByTracking(ctx context.Context, tracking string) (*entities.Package, error) {
	pkg, err := s.repository.GetByTracking(ctx, tracking)
	if err != nil {
		return nil, fmt.Errorf("get package by tracking: %w", err)
	}
	return pkg, nil
}

func (s *Service) ListPackages(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error) {
	packagesList, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return packagesList, nil
}

func (s *Service) GetPackageHistory(ctx context.Context, id int64, limit uint64) ([]entities.HistoryEntry, error) {
	if _, err := s.repository.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}

	entries, err := s.ledger.List(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("list package history: %w", err)
	}

	return entries, nil
}

func (s *Service) GetPackageNotifications(ctx context.Context, id int64, limit uint64) ([]entities.NotificationEntry, error) {
	if _, err := s.repository.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}

	entries, err := s.notificationLog.List(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("list package notifications: %w", err)
	}

	return entries, nil
}

// IssueOtp mints a fresh pickup code, records it in the history and sends
// it to the customer. Previous codes are invalidated by the authority.
func (s *Service) IssueOtp(ctx context.Context, id int64, actorID *int64) (*entities.OtpIssue, error) {
	pkg, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}

	issue, err := s.otps.Issue(ctx, pkg.ID, s.otpOptions)
	if err != nil {
		return nil, fmt.Errorf("issue otp: %w", err)
	}

	s.appendHistory(ctx, entities.HistoryEntry{
		PackageID: pkg.ID,
		EventType: entities.HistoryOtpGenerated,
		ActorID:   actorID,
		Meta:      map[string]any{"otp_id": issue.OtpID},
	})
	s.notifyEvent(ctx, pkg, entities.NotifyOtpGenerated, issueContext(issue))

	return issue, nil
}

// ConfirmPickupWithOtp hands the package over after a successful code
// verification. The status transition suppresses its own notification so
// the customer gets exactly one picked_up message.
func (s *Service) ConfirmPickupWithOtp(ctx context.Context, id int64, code string, actorID *int64) (*entities.Package, error) {
	if _, err := s.repository.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}

	verified, err := s.otps.Verify(ctx, id, code)
	if err != nil {
		return nil, fmt.Errorf("verify otp: %w", err)
	}

	meta := map[string]any{"otp_id": verified.ID}
	updated, _, err := s.transition(ctx, id, entities.PackageRitirato, entities.HistoryOtpConfirmed, actorID, meta)
	if err != nil {
		return nil, err
	}

	s.notifyEvent(ctx, updated, entities.NotifyPickedUp, notify.Context{})

	return updated, nil
}

// ConfirmPickupWithQr hands the package over when the presented QR payload
// resolves to the same package id. No OTP bookkeeping is touched.
func (s *Service) ConfirmPickupWithQr(ctx context.Context, id int64, presented string, actorID *int64) (*entities.Package, error) {
	extracted, err := qrcode.ExtractPackageID(presented)
	if err != nil {
		return nil, err
	}
	if extracted != id {
		return nil, fmt.Errorf("presented code resolves to package %d: %w", extracted, ErrQrMismatch)
	}

	updated, _, err := s.transition(ctx, id, entities.PackageRitirato, entities.HistoryQrConfirmed, actorID, nil)
	if err != nil {
		return nil, err
	}

	s.notifyEvent(ctx, updated, entities.NotifyPickedUp, notify.Context{})

	return updated, nil
}

// ConfirmPickup routes a free-text checkin: pure digits of the configured
// code length go through OTP verification, everything else through QR
// extraction.
func (s *Service) ConfirmPickup(ctx context.Context, id int64, input string, actorID *int64) (*entities.Package, error) {
	otpLength := s.otpOptions.Length
	if otpLength == 0 {
		otpLength = otp.DefaultLength
	}

	if qrcode.IsOtpShaped(input, otpLength) {
		return s.ConfirmPickupWithOtp(ctx, id, input, actorID)
	}

	return s.ConfirmPickupWithQr(ctx, id, input, actorID)
}

type SweepOptions struct {
	GraceDays   int
	WarningDays int
}

type SweepResult struct {
	Processed int
	Warned    int
	Expired   int
}

// RunStorageExpirationSweep walks every package sitting in storage and
// either expires it (grace period elapsed) or warns the customer (inside
// the warning window, at most once per package). Each package is handled
// independently, so one failure does not stop the sweep and a re-run picks
// up where the last one left off.
func (s *Service) RunStorageExpirationSweep(ctx context.Context, opts SweepOptions) (SweepResult, error) {
	graceDays := opts.GraceDays
	if graceDays == 0 {
		graceDays = DefaultStorageGraceDays
	}
	warningDays := opts.WarningDays
	if warningDays == 0 {
		warningDays = DefaultStorageWarningDays
	}

	inStorage, err := s.repository.ListInStorage(ctx)
	if err != nil {
		return SweepResult{}, fmt.Errorf("list packages in storage: %w", err)
	}

	var result SweepResult
	now := time.Now()

	for i := range inStorage {
		pkg := &inStorage[i]
		result.Processed++

		expiresOn := pkg.StorageReferenceTime().AddDate(0, 0, graceDays)
		daysInStorage := int(now.Sub(pkg.StorageReferenceTime()).Hours() / 24)

		switch {
		case now.After(expiresOn):
			if s.expireStoredPackage(ctx, pkg.ID, expiresOn, daysInStorage) {
				result.Expired++
			}
		case now.After(expiresOn.AddDate(0, 0, -warningDays)):
			if s.warnStoredPackage(ctx, pkg, expiresOn, daysInStorage) {
				result.Warned++
			}
		}
	}

	return result, nil
}

// expireStoredPackage re-checks the status under a row lock: the customer
// may pick the package up while the sweep is running.
func (s *Service) expireStoredPackage(ctx context.Context, id int64, expiresOn time.Time, daysInStorage int) bool {
	var expired *entities.Package

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock package: %w", err)
		}
		if locked.Status != entities.PackageInGiacenza {
			return nil
		}

		expired, err = s.repository.Update(ctx, entities.PackageModify{
			ID:     pointer.To(id),
			Status: pointer.To(entities.PackageInGiacenzaScaduto),
		})
		if err != nil {
			return fmt.Errorf("expire package: %w", err)
		}

		_, err = s.ledger.Append(ctx, entities.HistoryEntry{
			PackageID:      id,
			EventType:      entities.HistoryStorageExpired,
			PreviousStatus: pointer.To(locked.Status),
			NewStatus:      pointer.To(entities.PackageInGiacenzaScaduto),
			Meta:           map[string]any{"days_in_storage": daysInStorage},
		})
		if err != nil {
			return fmt.Errorf("append storage_expired history: %w", err)
		}

		return nil
	})
	if err != nil {
		s.logger.Error("storage expiration failed",
			logger.NewField("package_id", id),
			logger.NewField("error", err.Error()),
		)
		return false
	}
	if expired == nil {
		// статус сменился под ногами, пакет уже не в giacenza
		return false
	}

	s.notifyEvent(ctx, expired, entities.NotifyStorageExpired, notify.Context{
		DaysInStorage: daysInStorage,
		ExpiresOn:     expiresOn,
	})

	return true
}

// warnStoredPackage sends the storage warning at most once per package:
// the notify_storage_warning ledger entry the dispatcher writes doubles as
// the dedup marker across runs.
func (s *Service) warnStoredPackage(ctx context.Context, pkg *entities.Package, expiresOn time.Time, daysInStorage int) bool {
	warned, err := s.ledger.HasEvent(ctx, pkg.ID, entities.NotifyEventType(entities.NotifyStorageWarning))
	if err != nil {
		s.logger.Error("storage warning dedup check failed",
			logger.NewField("package_id", pkg.ID),
			logger.NewField("error", err.Error()),
		)
		return false
	}
	if warned {
		return false
	}

	s.notifyEvent(ctx, pkg, entities.NotifyStorageWarning, notify.Context{
		DaysInStorage: daysInStorage,
		ExpiresOn:     expiresOn,
	})

	return true
}

// ArchiveDeliveredPackages archives picked-up packages whose last update is
// older than the threshold and returns how many rows were affected.
func (s *Service) ArchiveDeliveredPackages(ctx context.Context, olderThanDays int) (int64, error) {
	if olderThanDays == 0 {
		olderThanDays = DefaultArchiveAfterDays
	}
	cutoff := time.Now().AddDate(0, 0, -olderThanDays)

	var archivedIDs []int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		archivedIDs, err = s.repository.ArchiveDelivered(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("archive delivered packages: %w", err)
		}

		for _, id := range archivedIDs {
			_, err = s.ledger.Append(ctx, entities.HistoryEntry{
				PackageID: id,
				EventType: entities.HistoryArchived,
			})
			if err != nil {
				return fmt.Errorf("append archived history: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return int64(len(archivedIDs)), nil
}

// transition moves the package into the target status under a row lock and
// writes a single history entry. A same-status call is an idempotent no-op:
// no history, no notification.
func (s *Service) transition(
	ctx context.Context,
	id int64,
	status entities.PackageStatusType,
	eventType entities.HistoryEventType,
	actorID *int64,
	meta map[string]any,
) (*entities.Package, bool, error) {
	var (
		updated *entities.Package
		changed bool
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock package: %w", err)
		}
		if current.Status == status {
			updated = current
			return nil
		}

		updated, err = s.repository.Update(ctx, entities.PackageModify{
			ID:     pointer.To(id),
			Status: pointer.To(status),
		})
		if err != nil {
			return fmt.Errorf("update package status: %w", err)
		}

		_, err = s.ledger.Append(ctx, entities.HistoryEntry{
			PackageID:      id,
			EventType:      eventType,
			PreviousStatus: pointer.To(current.Status),
			NewStatus:      pointer.To(status),
			ActorID:        actorID,
			Meta:           meta,
		})
		if err != nil {
			return fmt.Errorf("append %s history: %w", eventType, err)
		}

		changed = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return updated, changed, nil
}

// issueOtp is the best-effort variant used by arrival flows: the package
// must still be admitted even when code generation fails.
func (s *Service) issueOtp(ctx context.Context, pkg *entities.Package, actorID *int64) *entities.OtpIssue {
	issue, err := s.otps.Issue(ctx, pkg.ID, s.otpOptions)
	if err != nil {
		s.logger.Error("otp issue failed",
			logger.NewField("package_id", pkg.ID),
			logger.NewField("error", err.Error()),
		)
		return nil
	}

	s.appendHistory(ctx, entities.HistoryEntry{
		PackageID: pkg.ID,
		EventType: entities.HistoryOtpGenerated,
		ActorID:   actorID,
		Meta:      map[string]any{"otp_id": issue.OtpID},
	})

	return issue
}

func (s *Service) appendHistory(ctx context.Context, entry entities.HistoryEntry) {
	if _, err := s.ledger.Append(ctx, entry); err != nil {
		s.logger.Error("history append failed",
			logger.NewField("package_id", entry.PackageID),
			logger.NewField("event", entry.EventType.String()),
			logger.NewField("error", err.Error()),
		)
	}
}

func (s *Service) notifyEvent(ctx context.Context, pkg *entities.Package, event entities.NotificationEventType, nctx notify.Context) {
	if _, err := s.notifier.Notify(ctx, pkg, event, nctx); err != nil {
		s.logger.Warn("notification dispatch failed",
			logger.NewField("package_id", pkg.ID),
			logger.NewField("event", event.String()),
			logger.NewField("error", err.Error()),
		)
	}
}

func issueContext(issue *entities.OtpIssue) notify.Context {
	if issue == nil {
		return notify.Context{}
	}
	return notify.Context{
		OtpCode:      issue.Code,
		OtpExpiresAt: issue.ExpiresAt,
	}
}

func validateContacts(packageModify entities.PackageModify) error {
	if packageModify.CustomerEmail != nil && *packageModify.CustomerEmail != "" && !isValidEmail(*packageModify.CustomerEmail) {
		return ErrInvalidEmail
	}
	if packageModify.CustomerPhone != nil && *packageModify.CustomerPhone != "" && !isValidPhone(*packageModify.CustomerPhone) {
		return ErrInvalidPhone
	}
	return nil
}
