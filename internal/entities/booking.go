package entities

import "time"

type Booking struct {
	ID              int64
	SenderID        int64
	CarrierID       *int64
	Origin          string
	OriginCoord     *Coordinate
	Destination     string
	DestCoord       *Coordinate
	DistanceKm      float64
	ScheduledDate   string
	ScheduledTime   string
	Price           int64
	TrafficLevel    TrafficLevel
	PaymentMethod   PaymentMethod
	PaymentDue      PaymentDuePoint
	PaymentReceived bool
	Status          BookingStatusType
	CreatedAt       time.Time
	DeliveredAt     *time.Time
}

// BookingModify — частичное обновление бронирования, nil-поля не трогаются.
type BookingModify struct {
	ID              *int64
	CarrierID       *int64
	PaymentReceived *bool
	Status          *BookingStatusType
	DeliveredAt     *time.Time
}

// Coordinate — пара широта/долгота в градусах.
type Coordinate struct {
	Lat float64
	Lng float64
}

type BookingStatusType string

const (
	BookingPending   BookingStatusType = "pending"
	BookingArrived   BookingStatusType = "arrived"
	BookingInTransit BookingStatusType = "in_transit"
	BookingDelivered BookingStatusType = "delivered"
)

func (s BookingStatusType) String() string {
	return string(s)
}

type TrafficLevel string

const (
	TrafficLow    TrafficLevel = "low"
	TrafficMedium TrafficLevel = "medium"
	TrafficHigh   TrafficLevel = "high"
)

const DefaultTrafficLevel = TrafficMedium

func (t TrafficLevel) String() string {
	return string(t)
}

// Rank упорядочивает уровни трафика для выбора худшего из нескольких оценок.
func (t TrafficLevel) Rank() int {
	switch t {
	case TrafficLow:
		return 0
	case TrafficMedium:
		return 1
	case TrafficHigh:
		return 2
	default:
		return -1
	}
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentDuePoint — момент, в который платеж должен быть подтвержден,
// прежде чем соответствующий переход статуса может состояться.
type PaymentDuePoint string

const (
	PaymentDueAtPickup   PaymentDuePoint = "at_pickup"
	PaymentDueAtDelivery PaymentDuePoint = "at_delivery"
)

func (p PaymentDuePoint) String() string {
	return string(p)
}
