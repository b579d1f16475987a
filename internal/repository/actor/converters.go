package actor

import "moveservice/internal/entities"

func ToDomain(a *ActorDB) *entities.Actor {
	if a == nil {
		return nil
	}
	return &entities.Actor{
		ID:            a.ID,
		Name:          a.Name,
		Phone:         a.Phone,
		Role:          entities.ActorRole(a.Role),
		CarrierStatus: entities.CarrierStatusType(a.CarrierStatus),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
