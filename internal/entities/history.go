package entities

import "time"

type HistoryEntry struct {
	ID             int64
	PackageID      int64
	EventType      HistoryEventType
	PreviousStatus *PackageStatusType
	NewStatus      *PackageStatusType
	ActorID        *int64
	Meta           map[string]any
	CreatedAt      time.Time
}

type HistoryEventType string

const (
	HistoryCreated        HistoryEventType = "created"
	HistoryStatusChange   HistoryEventType = "status_change"
	HistoryOtpGenerated   HistoryEventType = "otp_generated"
	HistoryOtpConfirmed   HistoryEventType = "otp_confirmed"
	HistoryQrConfirmed    HistoryEventType = "qr_confirmed"
	HistoryStorageExpired HistoryEventType = "storage_expired"
	HistoryArchived       HistoryEventType = "archived"
)

func (t HistoryEventType) String() string {
	return string(t)
}

// NotifyEventType builds the ledger tag for a dispatched notification,
// e.g. "notify_storage_warning". These entries double as the idempotency
// guard for warning-type notifications.
func NotifyEventType(event NotificationEventType) HistoryEventType {
	return HistoryEventType("notify_" + string(event))
}
