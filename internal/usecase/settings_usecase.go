package usecase

import (
	"context"

	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/money"

	"github.com/google/uuid"
)

// SettingsUsecase reads and writes the owner's break-even settings.
type SettingsUsecase interface {
	// GetSettings returns zero-valued settings when none were saved.
	GetSettings(ctx context.Context, userID uuid.UUID) (*entity.BusinessSettings, error)
	UpsertSettings(ctx context.Context, userID uuid.UUID, input *SettingsInput) (*entity.BusinessSettings, error)
}

// SettingsInput replaces all settings at once.
type SettingsInput struct {
	FixedCosts          money.Amount `json:"fixedCosts"`
	TargetProfit        money.Amount `json:"targetProfit"`
	AverageSellingPrice money.Amount `json:"averageSellingPrice"`
}
