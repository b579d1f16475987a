package rating

import "errors"

var (
	ErrInvalidBookingID = errors.New("invalid booking id")
	ErrInvalidActorID   = errors.New("invalid actor id")
	ErrInvalidScore     = errors.New("score out of range")

	// ErrNotDelivered — оценивать можно только завершённые перевозки.
	ErrNotDelivered = errors.New("booking is not delivered")

	// ErrAlreadyRated — на пару (бронирование, направление) уже есть оценка.
	ErrAlreadyRated = errors.New("booking already rated in this direction")

	ErrNotAuthorized = errors.New("actor is not a participant of the booking")
)
