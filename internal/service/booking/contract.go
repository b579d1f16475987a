//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"

	"moveservice/internal/entities"
	"moveservice/internal/service/pricing"
)

type Repository interface {
	Create(ctx context.Context, bookingEntity *entities.Booking) (*entities.Booking, error)
	GetByID(ctx context.Context, id int64) (*entities.Booking, error)

	// UpdateStatusExpected применяет изменения compare-and-set'ом: строка
	// обновляется только если её статус всё ещё равен expected. Проигранная
	// гонка — ErrStatusConflict, исчезнувшая строка — ErrBookingNotFound.
	UpdateStatusExpected(ctx context.Context, bookingModify entities.BookingModify, expected entities.BookingStatusType) (*entities.Booking, error)

	SetPaymentReceived(ctx context.Context, id int64) (*entities.Booking, error)
}

type ActorProvider interface {
	GetActor(ctx context.Context, id int64) (*entities.Actor, error)
}

type PricingService interface {
	Estimate(ctx context.Context, q pricing.Query) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
