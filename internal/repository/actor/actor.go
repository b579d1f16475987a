// Package actor читает участников системы. Записями владеет внешний
// identity-сервис, синхронизирующий таблицу actors.
package actor

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"moveservice/internal/entities"
	"moveservice/internal/service/booking"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetActor(ctx context.Context, id int64) (*entities.Actor, error) {
	query := `SELECT id, name, phone, role, carrier_status, created_at, updated_at
		FROM actors
		WHERE id = $1`

	var actorModel ActorDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&actorModel.ID,
			&actorModel.Name,
			&actorModel.Phone,
			&actorModel.Role,
			&actorModel.CarrierStatus,
			&actorModel.CreatedAt,
			&actorModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrActorNotFound
		}
		return nil, fmt.Errorf("unexpected actor repository get error: %w", err)
	}

	return ToDomain(&actorModel), nil
}
