package package_inbound

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"pickuppoint/internal/entities"
	"pickuppoint/internal/service/pickup"
	"pickuppoint/pkg/logger"
)

// inboundEvent is the announcement a carrier system publishes when a
// package is on its way to the pickup location.
type inboundEvent struct {
	Tracking         string     `json:"tracking"`
	CustomerName     string     `json:"customer_name"`
	CustomerPhone    string     `json:"customer_phone"`
	CustomerEmail    string     `json:"customer_email"`
	CourierID        *int64     `json:"courier_id"`
	PickupLocationID *int64     `json:"pickup_location_id"`
	ExpectedAt       *time.Time `json:"expected_at"`
}

type Handler struct {
	pickupService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, pickupService Service, timeout time.Duration) *Handler {
	return &Handler{
		pickupService:            pickupService,
		log:                      log.With(),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("package.inbound: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("package.inbound: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event inboundEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("package.inbound handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("tracking", event.Tracking),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("package.inbound processing")

	packageModify := entities.PackageModify{
		Tracking:         &event.Tracking,
		CustomerName:     &event.CustomerName,
		CourierID:        event.CourierID,
		PickupLocationID: event.PickupLocationID,
		ExpectedAt:       event.ExpectedAt,
	}
	if event.CustomerPhone != "" {
		packageModify.CustomerPhone = &event.CustomerPhone
	}
	if event.CustomerEmail != "" {
		packageModify.CustomerEmail = &event.CustomerEmail
	}

	created, err := h.pickupService.CreatePackage(ctx, packageModify)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.inbound handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, pickup.ErrDuplicateTracking):
			// повторная доставка события, оффсет коммитим
			msgLog.Warn("package.inbound handler duplicate tracking, skipping")

		case errors.Is(err, pickup.ErrMissingRequiredFields),
			errors.Is(err, pickup.ErrInvalidEmail),
			errors.Is(err, pickup.ErrInvalidPhone):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.inbound handler invalid event payload, skipping")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.inbound handler failed to admit package")
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("package", created.ID),
		logger.NewField("tracking", created.Tracking),
		logger.NewField("status", created.Status.String()),
		logger.NewField("offset", message.Offset),
	).Info("package.inbound: admitted")

	sess.MarkMessage(message, "")
	return false
}
