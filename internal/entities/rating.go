package entities

import "time"

// RatingRecord — одна направленная оценка, привязанная ровно к одному
// бронированию. На пару (бронирование, направление) допускается не более
// одной записи.
type RatingRecord struct {
	ID        int64
	BookingID int64
	Direction RatingDirection
	RaterID   int64
	RatedID   int64
	Score     int
	Feedback  string
	CreatedAt time.Time
}

type RatingDirection string

const (
	SenderRatesCarrier RatingDirection = "sender_rates_carrier"
	CarrierRatesSender RatingDirection = "carrier_rates_sender"
)

func (d RatingDirection) String() string {
	return string(d)
}

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// RatingSummary — агрегат оценок участника.
type RatingSummary struct {
	ActorID        int64
	AverageScore   float64
	RatingCount    int64
	DeliveredCount int64
}
