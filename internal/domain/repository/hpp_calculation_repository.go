package repository

import (
	"context"
	"errors"

	"bookkeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHppCalculationNotFound is returned when an HPP calculation is not found for the owner.
var ErrHppCalculationNotFound = errors.New("hpp calculation not found")

// HppCalculationRepository persists HPP calculation history.
type HppCalculationRepository interface {
	Create(ctx context.Context, calc *entity.HppCalculation) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.HppCalculation, error)
	// ListByOwner returns calculations newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.HppCalculation, error)
	Update(ctx context.Context, calc *entity.HppCalculation) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
}
