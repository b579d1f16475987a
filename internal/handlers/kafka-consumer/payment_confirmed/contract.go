package payment_confirmed

import (
	"context"

	"moveservice/internal/entities"
	"moveservice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessPaymentEvent(ctx context.Context, bookingID int64) (*entities.Booking, error)
}
