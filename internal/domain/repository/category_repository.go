package repository

import (
	"context"
	"errors"

	"bookkeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found for the owner.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the persistence operations for transaction categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.TransactionCategory) error
	// CreateBatch inserts several categories in one statement.
	CreateBatch(ctx context.Context, categories []*entity.TransactionCategory) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.TransactionCategory, error)
	// ListByOwner returns the owner's categories, optionally only those of one kind.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, kind *entity.TransactionKind) ([]*entity.TransactionCategory, error)
	Update(ctx context.Context, category *entity.TransactionCategory) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
}
