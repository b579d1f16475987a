package rating

import "moveservice/internal/entities"

func ToDomain(r *RatingDB) *entities.RatingRecord {
	if r == nil {
		return nil
	}
	return &entities.RatingRecord{
		ID:        r.ID,
		BookingID: r.BookingID,
		Direction: entities.RatingDirection(r.Direction),
		RaterID:   r.RaterID,
		RatedID:   r.RatedID,
		Score:     r.Score,
		Feedback:  r.Feedback,
		CreatedAt: r.CreatedAt,
	}
}

func FromDomain(r *entities.RatingRecord) *RatingDB {
	if r == nil {
		return nil
	}
	return &RatingDB{
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
