// Package dto содержит типы запросов и ответов REST API.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PriceEstimateRequest struct {
	Distance    string      `json:"distance,omitempty"`
	Origin      *Coordinate `json:"origin,omitempty"`
	Destination *Coordinate `json:"destination,omitempty"`
	Category    string      `json:"category"`
	Traffic     string      `json:"traffic,omitempty"`
	Time        string      `json:"time,omitempty"`
}

type PriceEstimateResponse struct {
	Price      int64   `json:"price"`
	DistanceKm float64 `json:"distance_km"`
	Traffic    string  `json:"traffic"`
}

type PriceCompareRequest struct {
	Distances []float64 `json:"distances"`
	Category  string    `json:"category"`
	Traffic   string    `json:"traffic,omitempty"`
	Time      string    `json:"time,omitempty"`
}

type PriceCompareResponse struct {
	Prices []int64 `json:"prices"`
}

type BookingCreateRequest struct {
	Origin        string      `json:"origin"`
	Destination   string      `json:"destination"`
	OriginCoord   *Coordinate `json:"origin_coord,omitempty"`
	DestCoord     *Coordinate `json:"dest_coord,omitempty"`
	Distance      string      `json:"distance,omitempty"`
	ScheduledDate string      `json:"scheduled_date,omitempty"`
	ScheduledTime string      `json:"scheduled_time,omitempty"`
	Category      string      `json:"category"`
	Traffic       string      `json:"traffic,omitempty"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	PaymentDue    string      `json:"payment_due,omitempty"`
}

type Booking struct {
	ID              int64      `json:"id"`
	SenderID        int64      `json:"sender_id"`
	CarrierID       *int64     `json:"carrier_id,omitempty"`
	Origin          string     `json:"origin"`
	Destination     string     `json:"destination"`
	DistanceKm      float64    `json:"distance_km"`
	ScheduledDate   string     `json:"scheduled_date,omitempty"`
	ScheduledTime   string     `json:"scheduled_time,omitempty"`
	Price           int64      `json:"price"`
	Traffic         string     `json:"traffic"`
	PaymentMethod   string     `json:"payment_method"`
	PaymentDue      string     `json:"payment_due"`
	PaymentReceived bool       `json:"payment_received"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
}

type RatingCreateRequest struct {
	BookingID int64  `json:"booking_id"`
	Score     int    `json:"score"`
	Feedback  string `json:"feedback,omitempty"`
}

type Rating struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"booking_id"`
	Direction string    `json:"direction"`
	RaterID   int64     `json:"rater_id"`
	RatedID   int64     `json:"rated_id"`
	Score     int       `json:"score"`
	Feedback  string    `json:"feedback,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type RatingSummary struct {
	ActorID        int64   `json:"actor_id"`
	AverageScore   float64 `json:"average_score"`
	RatingCount    int64   `json:"rating_count"`
	DeliveredCount int64   `json:"delivered_count"`
}
