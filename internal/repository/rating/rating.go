package rating

import (
	"context"
	"fmt"

	"moveservice/internal/entities"
	"moveservice/internal/repository"
	"moveservice/internal/service/rating"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, record *entities.RatingRecord) (*entities.RatingRecord, error) {
	ratingModel := FromDomain(record)

	query := `
		INSERT INTO ratings (booking_id, direction, rater_id, rated_id, score, feedback)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, booking_id, direction, rater_id, rated_id, score, feedback, created_at
	`

	var created RatingDB
	err := r.querier.QueryRow(
		ctx,
		query,
		ratingModel.BookingID,
		ratingModel.Direction,
		ratingModel.RaterID,
		ratingModel.RatedID,
		ratingModel.Score,
		ratingModel.Feedback,
	).Scan(
		&created.ID,
		&created.BookingID,
		&created.Direction,
		&created.RaterID,
		&created.RatedID,
		&created.Score,
		&created.Feedback,
		&created.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, rating.ErrAlreadyRated
		}
		return nil, fmt.Errorf("unexpected rating repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) Exists(ctx context.Context, bookingID int64, direction entities.RatingDirection) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM ratings WHERE booking_id = $1 AND direction = $2
	)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, bookingID, direction.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected rating repository exists error: %w", err)
	}
	return exists, nil
}

// Summary считает агрегат по полученным оценкам и количеству завершённых
// перевозок участника в любой из ролей.
func (r *Repository) Summary(ctx context.Context, actorID int64) (*entities.RatingSummary, error) {
	query := `
		SELECT
			COALESCE(AVG(rt.score), 0),
			COUNT(rt.id),
			(SELECT COUNT(*) FROM bookings b
				WHERE b.status = 'delivered'
				AND (b.sender_id = $1 OR b.carrier_id = $1))
		FROM ratings rt
		WHERE rt.rated_id = $1
	`

	summary := entities.RatingSummary{ActorID: actorID}
	err := r.querier.QueryRow(ctx, query, actorID).Scan(
		&summary.AverageScore,
		&summary.RatingCount,
		&summary.DeliveredCount,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected rating repository summary error: %w", err)
	}

	return &summary, nil
}
