//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rating_post_test
package rating_post

import (
	"context"

	"moveservice/internal/entities"
	"moveservice/internal/service/rating"
	"moveservice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RateBooking(ctx context.Context, input rating.RateInput) (*entities.RatingRecord, error)
}
