package booking

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidBookingID      = errors.New("invalid booking id")
	ErrInvalidActorID        = errors.New("invalid actor id")
	ErrInvalidPlace          = errors.New("invalid origin or destination")
	ErrUnknownCategory       = errors.New("unknown vehicle category")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidPaymentDue     = errors.New("invalid payment due point")
	ErrUnknownAction         = errors.New("unknown lifecycle action")

	ErrBookingNotFound = errors.New("booking not found")
	ErrActorNotFound   = errors.New("actor not found")

	// ErrStatusConflict — ожидаемый исходный статус перехода больше не
	// актуален: бронирование уже продвинулось или занято другим. Не
	// ретраится автоматически.
	ErrStatusConflict = errors.New("booking status conflict")

	ErrNotAuthorized      = errors.New("actor is not authorized for this booking")
	ErrCarrierNotApproved = errors.New("carrier is not approved")

	// ErrPaymentNotSatisfied отделен от ErrNotAuthorized: вызывающему нужно
	// показать действие оплаты, а не ошибку прав.
	ErrPaymentNotSatisfied = errors.New("payment not received for gated transition")
)
