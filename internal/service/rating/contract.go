//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rating_test
package rating

import (
	"context"

	"moveservice/internal/entities"
)

type Repository interface {
	// Create вставляет оценку. Нарушение уникальности
	// (бронирование, направление) возвращается как ErrAlreadyRated.
	Create(ctx context.Context, record *entities.RatingRecord) (*entities.RatingRecord, error)

	Exists(ctx context.Context, bookingID int64, direction entities.RatingDirection) (bool, error)
	Summary(ctx context.Context, actorID int64) (*entities.RatingSummary, error)
}

type BookingProvider interface {
	GetByID(ctx context.Context, id int64) (*entities.Booking, error)
}
