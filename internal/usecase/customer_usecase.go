package usecase

import (
	"context"

	"bookkeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerUsecase manages the owner's customers.
type CustomerUsecase interface {
	CreateCustomer(ctx context.Context, userID uuid.UUID, input *CustomerInput) (*entity.Customer, error)
	GetCustomer(ctx context.Context, userID, customerID uuid.UUID) (*entity.Customer, error)
	ListCustomers(ctx context.Context, userID uuid.UUID) ([]*entity.Customer, error)
	// UpdateCustomer applies only the fields present in the patch.
	UpdateCustomer(ctx context.Context, userID, customerID uuid.UUID, patch *CustomerPatch) (*entity.Customer, error)
	// DeleteCustomer removes the customer and detaches it from the owner's transactions.
	DeleteCustomer(ctx context.Context, userID, customerID uuid.UUID) error
}

// CustomerInput holds the editable customer fields.
type CustomerInput struct {
	Name    string `json:"name" validate:"required,max=150"`
	Email   string `json:"email" validate:"omitempty,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Address string `json:"address" validate:"omitempty,max=500"`
}

// CustomerPatch changes selected customer fields. An empty string clears an optional field.
type CustomerPatch struct {
	Name    *string `json:"name" validate:"omitempty,max=150"`
	Email   *string `json:"email" validate:"omitempty,email,max=255"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Address *string `json:"address" validate:"omitempty,max=500"`
}
