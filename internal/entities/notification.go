package entities

import "time"

type NotificationEventType string

const (
	NotifyArrived        NotificationEventType = "arrived"
	NotifyPickedUp       NotificationEventType = "picked_up"
	NotifyStorageWarning NotificationEventType = "storage_warning"
	NotifyStorageExpired NotificationEventType = "storage_expired"
	NotifyOtpGenerated   NotificationEventType = "otp_generated"
)

func (t NotificationEventType) String() string {
	return string(t)
}

type NotificationChannelType string

const (
	ChannelEmail    NotificationChannelType = "email"
	ChannelWhatsapp NotificationChannelType = "whatsapp"
)

func (t NotificationChannelType) String() string {
	return string(t)
}

type NotificationStatusType string

const (
	NotificationSent   NotificationStatusType = "inviata"
	NotificationFailed NotificationStatusType = "errore"
	NotificationManual NotificationStatusType = "manuale"
)

func (t NotificationStatusType) String() string {
	return string(t)
}

type NotificationEntry struct {
	ID        int64
	PackageID int64
	Channel   NotificationChannelType
	Status    NotificationStatusType
	Message   string
	Meta      map[string]any
	CreatedAt time.Time
}

// ChannelResult is the per-channel outcome of one dispatch call. A manual
// fallback (wa.me deep link) counts as success: an operator can still
// complete delivery by hand.
type ChannelResult struct {
	Success     bool
	Recipient   string
	FallbackURL string
	Err         error
}

type NotificationResult map[NotificationChannelType]ChannelResult
