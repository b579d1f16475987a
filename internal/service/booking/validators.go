package booking

import (
	"strings"

	"moveservice/internal/entities"
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidPlace(place string) bool {
	return strings.TrimSpace(place) != ""
}

func hasScheduledDate(input CreateInput) bool {
	return strings.TrimSpace(input.ScheduledDate) != ""
}

func isValidPaymentMethod(method entities.PaymentMethod) bool {
	switch method {
	case entities.PaymentCash, entities.PaymentOnline:
		return true
	default:
		return false
	}
}

func isValidPaymentDue(due entities.PaymentDuePoint) bool {
	switch due {
	case entities.PaymentDueAtPickup, entities.PaymentDueAtDelivery:
		return true
	default:
		return false
	}
}
