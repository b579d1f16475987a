package actor

import "time"

type ActorDB struct {
	ID            int64
	Name          string
	Phone         string
	Role          string
	CarrierStatus string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
