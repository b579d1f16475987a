package booking

import "moveservice/internal/entities"

func ToDomain(b *BookingDB) *entities.Booking {
	if b == nil {
		return nil
	}
	return &entities.Booking{
		ID:              b.ID,
		SenderID:        b.SenderID,
		CarrierID:       b.CarrierID,
		Origin:          b.Origin,
		OriginCoord:     toCoord(b.OriginLat, b.OriginLng),
		Destination:     b.Destination,
		DestCoord:       toCoord(b.DestLat, b.DestLng),
		DistanceKm:      b.DistanceKm,
		ScheduledDate:   b.ScheduledDate,
		ScheduledTime:   b.ScheduledTime,
		Price:           b.Price,
		TrafficLevel:    entities.TrafficLevel(b.TrafficLevel),
		PaymentMethod:   entities.PaymentMethod(b.PaymentMethod),
		PaymentDue:      entities.PaymentDuePoint(b.PaymentDue),
		PaymentReceived: b.PaymentReceived,
		Status:          entities.BookingStatusType(b.Status),
		CreatedAt:       b.CreatedAt,
		DeliveredAt:     b.DeliveredAt,
	}
}

func FromDomain(b *entities.Booking) *BookingDB {
	if b == nil {
		return nil
	}
	bookingDB := &BookingDB{
		ID:              b.ID,
		SenderID:        b.SenderID,
		CarrierID:       b.CarrierID,
		Origin:          b.Origin,
		Destination:     b.Destination,
		DistanceKm:      b.DistanceKm,
		ScheduledDate:   b.ScheduledDate,
		ScheduledTime:   b.ScheduledTime,
		Price:           b.Price,
		TrafficLevel:    b.TrafficLevel.String(),
		PaymentMethod:   b.PaymentMethod.String(),
		PaymentDue:      b.PaymentDue.String(),
		PaymentReceived: b.PaymentReceived,
		Status:          b.Status.String(),
		CreatedAt:       b.CreatedAt,
		DeliveredAt:     b.DeliveredAt,
	}
	if b.OriginCoord != nil {
		bookingDB.OriginLat = &b.OriginCoord.Lat
		bookingDB.OriginLng = &b.OriginCoord.Lng
	}
	if b.DestCoord != nil {
		bookingDB.DestLat = &b.DestCoord.Lat
		bookingDB.DestLng = &b.DestCoord.Lng
	}
	return bookingDB
}

func FromDomainModify(b *entities.BookingModify) *BookingModifyDB {
	if b == nil {
		return nil
	}
	bookingModifyDB := &BookingModifyDB{}

	if b.ID != nil {
		bookingModifyDB.ID = b.ID
	}
	if b.CarrierID != nil {
		bookingModifyDB.CarrierID = b.CarrierID
	}
	if b.PaymentReceived != nil {
		bookingModifyDB.PaymentReceived = b.PaymentReceived
	}
	if b.Status != nil {
		status := b.Status.String()
		bookingModifyDB.Status = &status
	}
	if b.DeliveredAt != nil {
		bookingModifyDB.DeliveredAt = b.DeliveredAt
	}

	return bookingModifyDB
}

func toCoord(lat, lng *float64) *entities.Coordinate {
	if lat == nil || lng == nil {
		return nil
	}
	return &entities.Coordinate{Lat: *lat, Lng: *lng}
}
