package repository

import (
	"context"
	"errors"

	"bookkeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessSettingsNotFound is returned when the owner never saved settings.
var ErrBusinessSettingsNotFound = errors.New("business settings not found")

// BusinessSettingsRepository persists the single settings row per owner.
type BusinessSettingsRepository interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessSettings, error)
	// Upsert creates or replaces the owner's settings atomically and refreshes
	// settings with the stored row.
	Upsert(ctx context.Context, settings *entity.BusinessSettings) error
}
