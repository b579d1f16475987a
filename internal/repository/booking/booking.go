package booking

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"moveservice/internal/entities"
	"moveservice/internal/service/booking"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const bookingColumns = `id, sender_id, carrier_id, origin, origin_lat, origin_lng,
		destination, dest_lat, dest_lng, distance_km, scheduled_date, scheduled_time,
		price, traffic_level, payment_method, payment_due, payment_received, status,
		created_at, delivered_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, bookingEntity *entities.Booking) (*entities.Booking, error) {
	bookingModel := FromDomain(bookingEntity)

	query := `
		INSERT INTO bookings (sender_id, origin, origin_lat, origin_lng,
			destination, dest_lat, dest_lng, distance_km, scheduled_date, scheduled_time,
			price, traffic_level, payment_method, payment_due, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + bookingColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		bookingModel.SenderID,
		bookingModel.Origin,
		bookingModel.OriginLat,
		bookingModel.OriginLng,
		bookingModel.Destination,
		bookingModel.DestLat,
		bookingModel.DestLng,
		bookingModel.DistanceKm,
		bookingModel.ScheduledDate,
		bookingModel.ScheduledTime,
		bookingModel.Price,
		bookingModel.TrafficLevel,
		bookingModel.PaymentMethod,
		bookingModel.PaymentDue,
		bookingModel.Status,
	)

	created, err := scanBooking(row)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository create error: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1`

	found, err := scanBooking(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository get error: %w", err)
	}
	return found, nil
}

// UpdateStatusExpected применяет изменения только если статус строки всё
// ещё равен expected. Нулевое число затронутых строк означает либо
// проигранную гонку за статус, либо отсутствие бронирования, различаем
// повторным чтением.
func (r *Repository) UpdateStatusExpected(
	ctx context.Context,
	bookingModify entities.BookingModify,
	expected entities.BookingStatusType,
) (*entities.Booking, error) {
	bookingModifyModel := FromDomainModify(&bookingModify)

	builder := qb.
		Update("bookings")

	// опциональные поля
	if bookingModifyModel.CarrierID != nil {
		builder = builder.Set("carrier_id", bookingModifyModel.CarrierID)
	}
	if bookingModifyModel.PaymentReceived != nil {
		builder = builder.Set("payment_received", bookingModifyModel.PaymentReceived)
	}
	if bookingModifyModel.Status != nil {
		builder = builder.Set("status", bookingModifyModel.Status)
	}
	if bookingModifyModel.DeliveredAt != nil {
		builder = builder.Set("delivered_at", bookingModifyModel.DeliveredAt)
	}

	builder = builder.
		Where(sq.Eq{"id": bookingModifyModel.ID, "status": expected.String()}).
		Suffix("RETURNING " + bookingColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository update error: %w", err)
	}

	updated, err := scanBooking(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, *bookingModifyModel.ID)
		}
		return nil, fmt.Errorf("unexpected booking repository update error: %w", err)
	}
	return updated, nil
}

func (r *Repository) SetPaymentReceived(ctx context.Context, id int64) (*entities.Booking, error) {
	query := `
		UPDATE bookings
		SET payment_received = TRUE
		WHERE id = $1
		RETURNING ` + bookingColumns

	updated, err := scanBooking(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository payment update error: %w", err)
	}
	return updated, nil
}

func (r *Repository) classifyMissedUpdate(ctx context.Context, id int64) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected booking repository update error: %w", err)
	}
	if exists {
		return booking.ErrStatusConflict
	}
	return booking.ErrBookingNotFound
}

func scanBooking(row pgx.Row) (*entities.Booking, error) {
	var bookingModel BookingDB
	err := row.Scan(
		&bookingModel.ID,
		&bookingModel.SenderID,
		&bookingModel.CarrierID,
		&bookingModel.Origin,
		&bookingModel.OriginLat,
		&bookingModel.OriginLng,
		&bookingModel.Destination,
		&bookingModel.DestLat,
		&bookingModel.DestLng,
		&bookingModel.DistanceKm,
		&bookingModel.ScheduledDate,
		&bookingModel.ScheduledTime,
		&bookingModel.Price,
		&bookingModel.TrafficLevel,
		&bookingModel.PaymentMethod,
		&bookingModel.PaymentDue,
		&bookingModel.PaymentReceived,
		&bookingModel.Status,
		&bookingModel.CreatedAt,
		&bookingModel.DeliveredAt,
	)
	if err != nil {
		return nil, err
	}
	return ToDomain(&bookingModel), nil
}
