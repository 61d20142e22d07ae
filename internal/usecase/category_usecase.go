package usecase

import (
	"context"

	"bookkeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryUsecase manages transaction categories.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, input *CreateCategoryInput) (*entity.TransactionCategory, error)
	// ListCategories returns all categories, or only those of kind when it is set.
	ListCategories(ctx context.Context, userID uuid.UUID, kind *entity.TransactionKind) ([]*entity.TransactionCategory, error)
	UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, input *UpdateCategoryInput) (*entity.TransactionCategory, error)
	// DeleteCategory removes the category; its transactions become uncategorized.
	DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error
}

// CreateCategoryInput defines a new category.
type CreateCategoryInput struct {
	Name  string                 `json:"name" validate:"required,max=100"`
	Kind  entity.TransactionKind `json:"kind" validate:"required,oneof=income expense"`
	Color string                 `json:"color" validate:"omitempty,hexcolor,len=7"`
}

// UpdateCategoryInput changes name or color. The kind of a category is fixed.
type UpdateCategoryInput struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Color *string `json:"color,omitempty" validate:"omitempty,hexcolor,len=7"`
}
