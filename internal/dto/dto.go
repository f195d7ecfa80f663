// Package dto holds the JSON request and response shapes of the HTTP API.
package dto

import "time"

type Package struct {
	ID               int64      `json:"id"`
	Tracking         string     `json:"tracking"`
	CustomerName     string     `json:"customer_name"`
	CustomerPhone    string     `json:"customer_phone,omitempty"`
	CustomerEmail    string     `json:"customer_email,omitempty"`
	CourierID        *int64     `json:"courier_id,omitempty"`
	PickupLocationID *int64     `json:"pickup_location_id,omitempty"`
	Status           string     `json:"status"`
	ExpectedAt       *time.Time `json:"expected_at,omitempty"`
	ArchivedAt       *time.Time `json:"archived_at,omitempty"`
	QrCodePath       string     `json:"qr_code_path,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type PackageCreate struct {
	Tracking         string     `json:"tracking"`
	CustomerName     string     `json:"customer_name"`
	CustomerPhone    string     `json:"customer_phone"`
	CustomerEmail    string     `json:"customer_email"`
	CourierID        *int64     `json:"courier_id"`
	PickupLocationID *int64     `json:"pickup_location_id"`
	Status           string     `json:"status"`
	ExpectedAt       *time.Time `json:"expected_at"`
	Notes            string     `json:"notes"`
}

type PackageUpdate struct {
	Tracking         *string    `json:"tracking"`
	CustomerName     *string    `json:"customer_name"`
	CustomerPhone    *string    `json:"customer_phone"`
	CustomerEmail    *string    `json:"customer_email"`
	CourierID        *int64     `json:"courier_id"`
	PickupLocationID *int64     `json:"pickup_location_id"`
	ExpectedAt       *time.Time `json:"expected_at"`
	Notes            *string    `json:"notes"`
}

type PackageStatusUpdate struct {
	Status      string `json:"status"`
	AutoNotify  *bool  `json:"auto_notify"`
	GenerateOtp *bool  `json:"generate_otp"`
	ActorID     *int64 `json:"actor_id"`
}

type PackageList struct {
	Packages []Package `json:"packages"`
}

type OtpIssueRequest struct {
	ActorID *int64 `json:"actor_id"`
}

type OtpIssueResponse struct {
	OtpID     int64     `json:"otp_id"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ConfirmRequest struct {
	Input   string `json:"input"`
	ActorID *int64 `json:"actor_id"`
}

type HistoryEntry struct {
	ID             int64          `json:"id"`
	EventType      string         `json:"event_type"`
	PreviousStatus *string        `json:"previous_status,omitempty"`
	NewStatus      *string        `json:"new_status,omitempty"`
	ActorID        *int64         `json:"actor_id,omitempty"`
	Meta           map[string]any `json:"meta,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

type HistoryList struct {
	Entries []HistoryEntry `json:"entries"`
}

type NotificationEntry struct {
	ID        int64          `json:"id"`
	Channel   string         `json:"channel"`
	Status    string         `json:"status"`
	Message   string         `json:"message"`
	Meta      map[string]any `json:"meta,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type NotificationList struct {
	Notifications []NotificationEntry `json:"notifications"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
