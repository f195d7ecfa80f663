package notify

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ttacon/libphonenumber"

	"pickuppoint/internal/entities"
	"pickuppoint/internal/repository"
	"pickuppoint/pkg/logger"
)

const defaultPhoneRegion = "IT"

// Context carries the event-specific values a template may need. Zero
// fields are fine for events that do not use them.
type Context struct {
	OtpCode       string
	OtpExpiresAt  time.Time
	DaysInStorage int
	ExpiresOn     time.Time
}

type Dispatcher struct {
	logger          serviceLogger
	email           EmailGateway
	whatsapp        WhatsappGateway
	notificationLog NotificationLog
	ledger          Ledger
	qr              QrGenerator
}

func NewDispatcher(
	l logger.Logger,
	email EmailGateway,
	whatsapp WhatsappGateway,
	notificationLog NotificationLog,
	ledger Ledger,
	qr QrGenerator,
) *Dispatcher {
	return &Dispatcher{
		logger:          l.With(logger.NewField("service", "notify")),
		email:           email,
		whatsapp:        whatsapp,
		notificationLog: notificationLog,
		ledger:          ledger,
		qr:              qr,
	}
}

// Notify fans one event out over every channel the package can be reached
// on. Channels are independent and best effort: one failing does not stop
// the other, and a failure never bubbles up as an operation failure. The
// returned result maps each attempted channel to its outcome; the only
// error returned is ErrNoRecipients when the package has neither email
// nor phone.
func (d *Dispatcher) Notify(
	ctx context.Context,
	pkg *entities.Package,
	event entities.NotificationEventType,
	nctx Context,
) (entities.NotificationResult, error) {
	if pkg.CustomerEmail == "" && pkg.CustomerPhone == "" {
		return nil, fmt.Errorf("package %d: %w", pkg.ID, ErrNoRecipients)
	}

	data := templateData{
		CustomerName:  pkg.CustomerName,
		Tracking:      pkg.Tracking,
		OtpCode:       nctx.OtpCode,
		OtpExpiresAt:  formatTime(nctx.OtpExpiresAt),
		DaysInStorage: nctx.DaysInStorage,
		StorageExpiry: formatTime(nctx.ExpiresOn),
		QrURL:         d.ensureQrArtifact(ctx, pkg, event),
	}

	subject, emailBody, whatsappBody, err := renderMessages(event, data)
	if err != nil {
		return nil, err
	}

	result := entities.NotificationResult{}
	if pkg.CustomerEmail != "" {
		result[entities.ChannelEmail] = d.sendEmail(ctx, pkg, event, subject, emailBody)
	}
	if pkg.CustomerPhone != "" {
		result[entities.ChannelWhatsapp] = d.sendWhatsapp(ctx, pkg, event, whatsappBody)
	}

	d.appendLedgerEntry(ctx, pkg, event, result)

	return result, nil
}

// ensureQrArtifact renders the QR for events whose message links it. The
// artifact is best effort: on failure the message goes out without a link.
func (d *Dispatcher) ensureQrArtifact(ctx context.Context, pkg *entities.Package, event entities.NotificationEventType) string {
	if event != entities.NotifyArrived && event != entities.NotifyOtpGenerated {
		return ""
	}

	if pkg.QrCodePath == "" {
		if _, err := d.qr.Generate(ctx, pkg.ID); err != nil {
			d.logger.Warn("qr generation failed, sending without link",
				logger.NewField("package_id", pkg.ID),
				logger.NewField("error", err.Error()),
			)
			return ""
		}
	}

	return d.qr.ConfirmURL(pkg.ID)
}

func (d *Dispatcher) sendEmail(
	ctx context.Context,
	pkg *entities.Package,
	event entities.NotificationEventType,
	subject, body string,
) entities.ChannelResult {
	res := entities.ChannelResult{Recipient: pkg.CustomerEmail}

	if !d.email.Configured() {
		res.Err = errors.New("email gateway not configured")
		d.record(ctx, pkg, event, entities.ChannelEmail, entities.NotificationFailed, subject, res)
		return res
	}

	if err := d.email.Send(ctx, pkg.CustomerEmail, subject, body); err != nil {
		res.Err = err
		d.logger.Error("email send failed",
			logger.NewField("package_id", pkg.ID),
			logger.NewField("event", event.String()),
			logger.NewField("error", err.Error()),
		)
		d.record(ctx, pkg, event, entities.ChannelEmail, entities.NotificationFailed, subject, res)
		return res
	}

	res.Success = true
	d.record(ctx, pkg, event, entities.ChannelEmail, entities.NotificationSent, subject, res)
	return res
}

func (d *Dispatcher) sendWhatsapp(
	ctx context.Context,
	pkg *entities.Package,
	event entities.NotificationEventType,
	body string,
) entities.ChannelResult {
	res := entities.ChannelResult{Recipient: pkg.CustomerPhone}

	if !d.whatsapp.Configured() {
		// Without a provider the message becomes a wa.me deep link the
		// operator opens by hand. That still counts as delivered.
		link, err := waMeLink(pkg.CustomerPhone, body)
		if err != nil {
			res.Err = err
			d.record(ctx, pkg, event, entities.ChannelWhatsapp, entities.NotificationFailed, body, res)
			return res
		}

		res.Success = true
		res.FallbackURL = link
		d.record(ctx, pkg, event, entities.ChannelWhatsapp, entities.NotificationManual, body, res)
		return res
	}

	if err := d.whatsapp.Send(ctx, pkg.CustomerPhone, body); err != nil {
		res.Err = err
		d.logger.Error("whatsapp send failed",
			logger.NewField("package_id", pkg.ID),
			logger.NewField("event", event.String()),
			logger.NewField("error", err.Error()),
		)
		d.record(ctx, pkg, event, entities.ChannelWhatsapp, entities.NotificationFailed, body, res)
		return res
	}

	res.Success = true
	d.record(ctx, pkg, event, entities.ChannelWhatsapp, entities.NotificationSent, body, res)
	return res
}

// record writes one row to the notification log. The log is an audit
// trail, so a write failure is logged and swallowed.
func (d *Dispatcher) record(
	ctx context.Context,
	pkg *entities.Package,
	event entities.NotificationEventType,
	channel entities.NotificationChannelType,
	status entities.NotificationStatusType,
	message string,
	res entities.ChannelResult,
) {
	meta := map[string]any{
		"event":     event.String(),
		"recipient": res.Recipient,
	}
	if res.FallbackURL != "" {
		meta["fallback_url"] = res.FallbackURL
	}
	if res.Err != nil {
		meta["error"] = res.Err.Error()
	}

	entry := entities.NotificationEntry{
		PackageID: pkg.ID,
		Channel:   channel,
		Status:    status,
		Message:   message,
		Meta:      meta,
	}

	if _, err := d.notificationLog.Append(ctx, entry); err != nil {
		d.logger.Error("notification log append failed",
			logger.NewField("package_id", pkg.ID),
			logger.NewField("channel", channel.String()),
			logger.NewField("error", err.Error()),
		)
	}
}

// appendLedgerEntry writes the single notify_<event> history row that ties
// the dispatch to the package timeline. When the meta cannot be serialized
// the row is retried without it rather than lost.
func (d *Dispatcher) appendLedgerEntry(
	ctx context.Context,
	pkg *entities.Package,
	event entities.NotificationEventType,
	result entities.NotificationResult,
) {
	meta := map[string]any{}
	for channel, res := range result {
		summary := map[string]any{
			"success":   res.Success,
			"recipient": res.Recipient,
		}
		if res.FallbackURL != "" {
			summary["fallback_url"] = res.FallbackURL
		}
		if res.Err != nil {
			summary["error"] = res.Err.Error()
		}
		meta[channel.String()] = summary
	}

	entry := entities.HistoryEntry{
		PackageID: pkg.ID,
		EventType: entities.NotifyEventType(event),
		Meta:      meta,
	}

	_, err := d.ledger.Append(ctx, entry)
	if errors.Is(err, repository.ErrMetaSerialization) {
		entry.Meta = nil
		_, err = d.ledger.Append(ctx, entry)
	}
	if err != nil {
		d.logger.Error("history append failed",
			logger.NewField("package_id", pkg.ID),
			logger.NewField("event", event.String()),
			logger.NewField("error", err.Error()),
		)
	}
}

// waMeLink builds a https://wa.me/<E164 digits>?text=... deep link.
func waMeLink(phone, message string) (string, error) {
	parsed, err := libphonenumber.Parse(phone, defaultPhoneRegion)
	if err != nil {
		return "", fmt.Errorf("parse phone for wa.me link: %w", err)
	}

	digits := strings.TrimPrefix(libphonenumber.Format(parsed, libphonenumber.E164), "+")

	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message)), nil
}
