package dto

import "moveservice/internal/entities"

func FromBooking(b *entities.Booking) Booking {
	return Booking{
		ID:              b.ID,
		SenderID:        b.SenderID,
		CarrierID:       b.CarrierID,
		Origin:          b.Origin,
		Destination:     b.Destination,
		DistanceKm:      b.DistanceKm,
		ScheduledDate:   b.ScheduledDate,
		ScheduledTime:   b.ScheduledTime,
		Price:           b.Price,
		Traffic:         b.TrafficLevel.String(),
		PaymentMethod:   b.PaymentMethod.String(),
		PaymentDue:      b.PaymentDue.String(),
		PaymentReceived: b.PaymentReceived,
		Status:          b.Status.String(),
		CreatedAt:       b.CreatedAt,
		DeliveredAt:     b.DeliveredAt,
	}
}

func FromRating(r *entities.RatingRecord) Rating {
	return Rating{
		ID:        r.ID,
		BookingID: r.BookingID,
		Direction: r.Direction.String(),
		RaterID:   r.RaterID,
		RatedID:   r.RatedID,
		Score:     r.Score,
		Feedback:  r.Feedback,
		CreatedAt: r.CreatedAt,
	}
}

func ToCoordinate(c *Coordinate) *entities.Coordinate {
	if c == nil {
		return nil
	}
	return &entities.Coordinate{Lat: c.Lat, Lng: c.Lng}
}
