package repository

import (
	"context"
	"errors"

	"bookkeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is returned when a customer is not found for the owner.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the persistence operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Customer, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Customer, error)
	// Update returns ErrCustomerNotFound when no row matches both ID and owner.
	Update(ctx context.Context, customer *entity.Customer) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
}
