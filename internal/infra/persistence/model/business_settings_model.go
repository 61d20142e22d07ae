package model

import (
	"time"

	"bookkeeper/internal/domain/money"

	"github.com/google/uuid"
)

// BusinessSettingsModel mirrors the 'business_settings' table, one row per user.
type BusinessSettingsModel struct {
	ID                  uuid.UUID    `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_business_settings_user_id"`
	FixedCosts          money.Amount `gorm:"type:numeric(15,2);not null"`
	TargetProfit        money.Amount `gorm:"type:numeric(15,2);not null"`
	AverageSellingPrice money.Amount `gorm:"type:numeric(15,2);not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessSettingsModel) TableName() string {
	return "business_settings"
}
