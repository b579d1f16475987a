package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moveservice/internal/entities"
	"moveservice/internal/pkg/geodistance"
	"moveservice/internal/pkg/timeband"
	"moveservice/internal/service/pricing"
)

type Booking struct {
	repository Repository
	actors     ActorProvider
	pricing    PricingService
	txManager  TxManager
}

func New(
	repository Repository,
	actors ActorProvider,
	pricingService PricingService,
	txManager TxManager,
) *Booking {
	return &Booking{
		repository: repository,
		actors:     actors,
		pricing:    pricingService,
		txManager:  txManager,
	}
}

// CreateInput — заявка на перевозку. Дистанция может прийти явным текстом,
// парой координат или не прийти вовсе — разрешение делает geodistance.
type CreateInput struct {
	SenderID      int64
	Origin        string
	Destination   string
	OriginCoord   *entities.Coordinate
	DestCoord     *entities.Coordinate
	DistanceText  string
	ScheduledDate string
	ScheduledTime string
	Category      entities.VehicleCategoryName
	Traffic       entities.TrafficLevel
	PaymentMethod entities.PaymentMethod
	PaymentDue    entities.PaymentDuePoint
}

// CreateBooking оценивает перевозку и сохраняет бронирование в статусе
// pending. Перевозчик, время доставки и флаг оплаты на этом этапе пусты.
func (s *Booking) CreateBooking(ctx context.Context, input CreateInput) (*entities.Booking, error) {
	if !isValidID(input.SenderID) {
		return nil, ErrInvalidActorID
	}
	if !isValidPlace(input.Origin) || !isValidPlace(input.Destination) {
		return nil, ErrInvalidPlace
	}
	if _, ok := entities.VehicleCategoryByName(input.Category); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, input.Category)
	}

	if input.PaymentMethod == "" {
		input.PaymentMethod = entities.PaymentCash
	}
	if input.PaymentDue == "" {
		input.PaymentDue = entities.PaymentDueAtPickup
	}
	if !isValidPaymentMethod(input.PaymentMethod) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, input.PaymentMethod)
	}
	if !isValidPaymentDue(input.PaymentDue) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentDue, input.PaymentDue)
	}
	// Без даты перевозки бронирование не планируется; время опционально,
	// по нему лишь уточняются трафик и пиковый флаг.
	if !hasScheduledDate(input) {
		return nil, fmt.Errorf("scheduled date: %w", ErrMissingRequiredFields)
	}

	sender, err := s.actors.GetActor(ctx, input.SenderID)
	if err != nil {
		return nil, fmt.Errorf("get sender: %w", err)
	}

	distanceKm := geodistance.Resolve(input.DistanceText, input.OriginCoord, input.DestCoord)

	// Явный уровень трафика уважаем, иначе оцениваем по времени суток.
	traffic := input.Traffic
	if traffic.Rank() < 0 {
		traffic = timeband.SuggestTraffic(input.ScheduledTime)
	}

	price, err := s.pricing.Estimate(ctx, pricing.Query{
		DistanceKm: distanceKm,
		Category:   input.Category,
		Traffic:    traffic,
		TimeOfDay:  input.ScheduledTime,
		IsPeak:     timeband.IsPeak(input.ScheduledTime),
	})
	if err != nil {
		return nil, fmt.Errorf("estimate price: %w", err)
	}

	bookingEntity := &entities.Booking{
		SenderID:      sender.ID,
		Origin:        input.Origin,
		OriginCoord:   input.OriginCoord,
		Destination:   input.Destination,
		DestCoord:     input.DestCoord,
		DistanceKm:    distanceKm,
		ScheduledDate: input.ScheduledDate,
		ScheduledTime: input.ScheduledTime,
		Price:         price,
		TrafficLevel:  traffic,
		PaymentMethod: input.PaymentMethod,
		PaymentDue:    input.PaymentDue,
		Status:        entities.BookingPending,
	}

	created, err := s.repository.Create(ctx, bookingEntity)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return created, nil
}

// GetBooking отдает бронирование отправителю, назначенному перевозчику
// или администратору.
func (s *Booking) GetBooking(ctx context.Context, actorID, bookingID int64) (*entities.Booking, error) {
	if !isValidID(actorID) {
		return nil, ErrInvalidActorID
	}
	if !isValidID(bookingID) {
		return nil, ErrInvalidBookingID
	}

	actor, err := s.actors.GetActor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}

	bookingEntity, err := s.repository.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if !canView(actor, bookingEntity) {
		return nil, ErrNotAuthorized
	}
	return bookingEntity, nil
}

// Accept: pending → arrived, назначает вызывающего перевозчиком.
// При гонке двух перевозчиков за одно бронирование выигрывает ровно один,
// остальные получают ErrStatusConflict.
func (s *Booking) Accept(ctx context.Context, actorID, bookingID int64) (*entities.Booking, error) {
	return s.applyTransition(ctx, actorID, bookingID, ActionAccept)
}

// Start: arrived → in_transit, с платежным гейтом в точке at_pickup.
func (s *Booking) Start(ctx context.Context, actorID, bookingID int64) (*entities.Booking, error) {
	return s.applyTransition(ctx, actorID, bookingID, ActionStart)
}

// Deliver: in_transit → delivered, с платежным гейтом в точке at_delivery.
// Время доставки проставляется моментом перехода.
func (s *Booking) Deliver(ctx context.Context, actorID, bookingID int64) (*entities.Booking, error) {
	return s.applyTransition(ctx, actorID, bookingID, ActionDeliver)
}

// ConfirmPayment помечает оплату полученной. Доступно назначенному
// перевозчику и администратору.
func (s *Booking) ConfirmPayment(ctx context.Context, actorID, bookingID int64) (*entities.Booking, error) {
	if !isValidID(actorID) {
		return nil, ErrInvalidActorID
	}
	if !isValidID(bookingID) {
		return nil, ErrInvalidBookingID
	}

	actor, err := s.actors.GetActor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}

	bookingEntity, err := s.repository.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err := guardAssignedCarrierOrAdmin(actor, bookingEntity); err != nil {
		return nil, err
	}

	updated, err := s.repository.SetPaymentReceived(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("set payment received: %w", err)
	}
	return updated, nil
}

// ProcessPaymentEvent — доверенный путь от внешнего платежного провайдера:
// подтверждение оплаты приходит событием, без участника-инициатора.
func (s *Booking) ProcessPaymentEvent(ctx context.Context, bookingID int64) (*entities.Booking, error) {
	if !isValidID(bookingID) {
		return nil, ErrInvalidBookingID
	}

	updated, err := s.repository.SetPaymentReceived(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("set payment received: %w", err)
	}
	return updated, nil
}

// applyTransition — единственный диспетчер жизненного цикла. Читает
// бронирование, проверяет исходный статус и гарды, затем коммитит переход
// compare-and-set'ом внутри транзакции.
func (s *Booking) applyTransition(ctx context.Context, actorID, bookingID int64, action Action) (*entities.Booking, error) {
	if !isValidID(actorID) {
		return nil, ErrInvalidActorID
	}
	if !isValidID(bookingID) {
		return nil, ErrInvalidBookingID
	}

	tr, ok := transitions[action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	actor, err := s.actors.GetActor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}

	var updated *entities.Booking
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		bookingEntity, err := s.repository.GetByID(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}

		// Попытка перехода из любого другого состояния — отказ, не no-op.
		if bookingEntity.Status != tr.from {
			return fmt.Errorf("%s from %q: %w", action, bookingEntity.Status, ErrStatusConflict)
		}

		for _, guard := range tr.guards {
			if err := guard(actor, bookingEntity); err != nil {
				return err
			}
		}

		newStatus := tr.to
		bookingModify := entities.BookingModify{
			ID:     &bookingID,
			Status: &newStatus,
		}
		if action == ActionAccept {
			bookingModify.CarrierID = &actor.ID
		}
		if action == ActionDeliver {
			deliveredAt := time.Now().UTC()
			bookingModify.DeliveredAt = &deliveredAt
		}

		updated, err = s.repository.UpdateStatusExpected(ctx, bookingModify, tr.from)
		if err != nil {
			return fmt.Errorf("commit %s: %w", action, err)
		}
		return nil
	})
	if err != nil {
		transitionsTotal.WithLabelValues(action.String(), transitionOutcome(err)).Inc()
		return nil, err
	}
	transitionsTotal.WithLabelValues(action.String(), "ok").Inc()
	return updated, nil
}

func transitionOutcome(err error) string {
	if errors.Is(err, ErrStatusConflict) {
		return "conflict"
	}
	return "denied"
}

func canView(actor *entities.Actor, b *entities.Booking) bool {
	if actor.IsAdmin() || b.SenderID == actor.ID {
		return true
	}
	return b.CarrierID != nil && *b.CarrierID == actor.ID
}
