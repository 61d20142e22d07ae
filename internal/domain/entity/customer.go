package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a counterparty that transactions may optionally reference.
type Customer struct {
	ID        uuid.UUID
	UserID    uuid.UUID // Owner of the record.
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
