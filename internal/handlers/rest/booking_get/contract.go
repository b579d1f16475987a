//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_get_test
package booking_get

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
	GetBooking(ctx context.Context, actorID, bookingID int64) (*entities.Booking, error)
}
