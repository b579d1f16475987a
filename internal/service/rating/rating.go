package rating

import (
	"context"
	"fmt"

	"moveservice/internal/entities"
)

type Rating struct {
	repository Repository
	bookings   BookingProvider
}

func New(repository Repository, bookings BookingProvider) *Rating {
	return &Rating{
		repository: repository,
		bookings:   bookings,
	}
}

type RateInput struct {
	ActorID   int64
	BookingID int64
	Score     int
	Feedback  string
}

// RateBooking принимает оценку за завершённую перевозку. Направление
// оценки выводится из того, кем участник был в бронировании: отправитель
// оценивает перевозчика, перевозчик оценивает отправителя. Повторная
// оценка в том же направлении отклоняется.
func (s *Rating) RateBooking(ctx context.Context, input RateInput) (*entities.RatingRecord, error) {
	if input.ActorID <= 0 {
		return nil, ErrInvalidActorID
	}
	if input.BookingID <= 0 {
		return nil, ErrInvalidBookingID
	}
	if input.Score < entities.MinRatingScore || input.Score > entities.MaxRatingScore {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScore, input.Score)
	}

	bookingEntity, err := s.bookings.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if bookingEntity.Status != entities.BookingDelivered {
		return nil, fmt.Errorf("status %q: %w", bookingEntity.Status, ErrNotDelivered)
	}

	direction, ratedID, err := deriveDirection(input.ActorID, bookingEntity)
	if err != nil {
		return nil, err
	}

	exists, err := s.repository.Exists(ctx, input.BookingID, direction)
	if err != nil {
		return nil, fmt.Errorf("check existing rating: %w", err)
	}
	if exists {
		return nil, ErrAlreadyRated
	}

	record := &entities.RatingRecord{
		BookingID: input.BookingID,
		Direction: direction,
		RaterID:   input.ActorID,
		RatedID:   ratedID,
		Score:     input.Score,
		Feedback:  input.Feedback,
	}

	// Гонку двух одинаковых оценок окончательно решает уникальный индекс,
	// репозиторий переводит его нарушение в ErrAlreadyRated.
	created, err := s.repository.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("create rating: %w", err)
	}
	return created, nil
}

// Summary возвращает агрегат оценок участника.
func (s *Rating) Summary(ctx context.Context, actorID int64) (*entities.RatingSummary, error) {
	if actorID <= 0 {
		return nil, ErrInvalidActorID
	}

	summary, err := s.repository.Summary(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("rating summary: %w", err)
	}
	return summary, nil
}

func deriveDirection(actorID int64, b *entities.Booking) (entities.RatingDirection, int64, error) {
	if b.SenderID == actorID {
		if b.CarrierID == nil {
			return "", 0, ErrNotAuthorized
		}
		return entities.SenderRatesCarrier, *b.CarrierID, nil
	}
	if b.CarrierID != nil && *b.CarrierID == actorID {
		return entities.CarrierRatesSender, b.SenderID, nil
	}
	return "", 0, ErrNotAuthorized
}
