//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pickup_test
package pickup

import (
	"context"
	"time"

	"pickuppoint/internal/entities"
	"pickuppoint/internal/service/notify"
	"pickuppoint/internal/service/otp"
	"pickuppoint/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error)
	Update(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error)
	GetByID(ctx context.Context, id int64) (*entities.Package, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Package, error)
	GetByTracking(ctx context.Context, tracking string) (*entities.Package, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error)
	ListInStorage(ctx context.Context) ([]entities.Package, error)
	ArchiveDelivered(ctx context.Context, cutoff time.Time) ([]int64, error)
}

type Ledger interface {
	Append(ctx context.Context, entry entities.HistoryEntry) (int64, error)
	List(ctx context.Context, packageID int64, limit uint64) ([]entities.HistoryEntry, error)
	HasEvent(ctx context.Context, packageID int64, eventType entities.HistoryEventType) (bool, error)
}

type NotificationLog interface {
	List(ctx context.Context, packageID int64, limit uint64) ([]entities.NotificationEntry, error)
}

type OtpAuthority interface {
	Issue(ctx context.Context, packageID int64, opts otp.IssueOptions) (*entities.OtpIssue, error)
	Verify(ctx context.Context, packageID int64, candidate string) (*entities.Otp, error)
}

type Notifier interface {
	Notify(ctx context.Context, pkg *entities.Package, event entities.NotificationEventType, nctx notify.Context) (entities.NotificationResult, error)
}

type QrGenerator interface {
	Generate(ctx context.Context, packageID int64) (string, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
