package payment_confirmed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	bookingservice "moveservice/internal/service/booking"
	"moveservice/pkg/logger"
)

// confirmedEvent — событие платежного провайдера об успешной оплате.
type confirmedEvent struct {
	BookingID int64  `json:"booking_id"`
	PaymentID string `json:"payment_id"`
}

type Handler struct {
	bookingService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, bookingService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		bookingService:           bookingService,
		log:                      handlerLog,
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
				// Messages() закрыт — выходим
				h.log.Info("payment.confirmed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("payment.confirmed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event confirmedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.confirmed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("booking", event.BookingID),
		logger.NewField("payment", event.PaymentID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.confirmed processing")

	bookingEntity, err := h.bookingService.ProcessPaymentEvent(ctx, event.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, bookingservice.ErrInvalidBookingID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmed handler invalid booking id in event")

		case errors.Is(err, bookingservice.ErrBookingNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmed handler booking not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmed handler failed to process booking")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("booking", bookingEntity.ID),
		logger.NewField("status", bookingEntity.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("payment.confirmed: processed")

	sess.MarkMessage(message, "")
	return false
}
