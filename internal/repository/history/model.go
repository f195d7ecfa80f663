package history

import "time"

type HistoryEntryDB struct {
	ID             int64
	PackageID      int64
	EventType      string
	PreviousStatus *string
	NewStatus      *string
	ActorID        *int64
	Meta           []byte
	CreatedAt      time.Time
}
