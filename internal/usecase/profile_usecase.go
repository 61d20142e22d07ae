package usecase

import (
	"context"

	"bookkeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}

// UpdateProfileInput changes only the fields that are set.
type UpdateProfileInput struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	BusinessName *string `json:"businessName,omitempty" validate:"omitempty,max=150"`
}
