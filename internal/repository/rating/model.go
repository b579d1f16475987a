package rating

import "time"

type RatingDB struct {
	ID        int64
	BookingID int64
	Direction string
	RaterID   int64
	RatedID   int64
	Score     int
	Feedback  string
	CreatedAt time.Time
}
