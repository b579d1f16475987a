package booking

import "time"

type BookingDB struct {
	ID              int64
	SenderID        int64
	CarrierID       *int64
	Origin          string
	OriginLat       *float64
	OriginLng       *float64
	Destination     string
	DestLat         *float64
	DestLng         *float64
	DistanceKm      float64
	ScheduledDate   string
	ScheduledTime   string
	Price           int64
	TrafficLevel    string
	PaymentMethod   string
	PaymentDue      string
	PaymentReceived bool
	Status          string
	CreatedAt       time.Time
	DeliveredAt     *time.Time
}

type BookingModifyDB struct {
	ID              *int64
	CarrierID       *int64
	PaymentReceived *bool
	Status          *string
	DeliveredAt     *time.Time
}
