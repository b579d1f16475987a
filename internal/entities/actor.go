package entities

import "time"

// Actor — участник системы: отправитель, перевозчик или администратор.
// Аутентификацией занимается внешний identity-сервис, ядро смотрит
// только на роль и статус допуска перевозчика.
type Actor struct {
	ID            int64
	Name          string
	Phone         string
	Role          ActorRole
	CarrierStatus CarrierStatusType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ActorRole string

const (
	RoleSender  ActorRole = "sender"
	RoleCarrier ActorRole = "carrier"
	RoleAdmin   ActorRole = "admin"
)

func (r ActorRole) String() string {
	return string(r)
}

type CarrierStatusType string

const (
	CarrierPending  CarrierStatusType = "pending"
	CarrierApproved CarrierStatusType = "approved"
	CarrierRejected CarrierStatusType = "rejected"
)

func (s CarrierStatusType) String() string {
	return string(s)
}

// IsApprovedCarrier сообщает, может ли участник брать заказы.
func (a *Actor) IsApprovedCarrier() bool {
	return a.Role == RoleCarrier && a.CarrierStatus == CarrierApproved
}

func (a *Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
