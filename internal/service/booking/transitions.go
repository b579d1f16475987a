package booking

import "moveservice/internal/entities"

type Action string

const (
	ActionAccept  Action = "accept"
	ActionStart   Action = "start"
	ActionDeliver Action = "deliver"
)

func (a Action) String() string {
	return string(a)
}

// guardFunc — композируемый предикат перехода. Возвращает nil, если переход
// разрешен для данного участника и бронирования.
type guardFunc func(actor *entities.Actor, b *entities.Booking) error

type transition struct {
	from   entities.BookingStatusType
	to     entities.BookingStatusType
	guards []guardFunc
}

// transitions — единственная таблица жизненного цикла:
// pending → arrived → in_transit → delivered, без пропусков и откатов.
// Все переходы проходят через один диспетчер applyTransition.
var transitions = map[Action]transition{
	ActionAccept: {
		from:   entities.BookingPending,
		to:     entities.BookingArrived,
		guards: []guardFunc{guardUnassigned, guardApprovedCarrier},
	},
	ActionStart: {
		from:   entities.BookingArrived,
		to:     entities.BookingInTransit,
		guards: []guardFunc{guardAssignedCarrierOrAdmin, guardPaymentAt(entities.PaymentDueAtPickup)},
	},
	ActionDeliver: {
		from:   entities.BookingInTransit,
		to:     entities.BookingDelivered,
		guards: []guardFunc{guardAssignedCarrierOrAdmin, guardPaymentAt(entities.PaymentDueAtDelivery)},
	},
}

func guardUnassigned(_ *entities.Actor, b *entities.Booking) error {
	if b.CarrierID != nil {
		return ErrStatusConflict
	}
	return nil
}

func guardApprovedCarrier(actor *entities.Actor, _ *entities.Booking) error {
	if !actor.IsApprovedCarrier() {
		return ErrCarrierNotApproved
	}
	return nil
}

func guardAssignedCarrierOrAdmin(actor *entities.Actor, b *entities.Booking) error {
	if actor.IsAdmin() {
		return nil
	}
	if b.CarrierID != nil && *b.CarrierID == actor.ID {
		return nil
	}
	return ErrNotAuthorized
}

// guardPaymentAt проверяет платежное правило: гейт действует только в
// настроенной точке оплаты бронирования, в остальных переходах оплата
// не проверяется вовсе.
func guardPaymentAt(due entities.PaymentDuePoint) guardFunc {
	return func(_ *entities.Actor, b *entities.Booking) error {
		if b.PaymentDue == due && !b.PaymentReceived {
			return ErrPaymentNotSatisfied
		}
		return nil
	}
}
