//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_post_test
package booking_post

import (
	"context"

	"moveservice/internal/entities"
	"moveservice/internal/service/booking"
	"moveservice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateBooking(ctx context.Context, input booking.CreateInput) (*entities.Booking, error)
}
