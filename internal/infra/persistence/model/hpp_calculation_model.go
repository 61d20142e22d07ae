package model

import (
	"time"

	"bookkeeper/internal/domain/money"

	"github.com/google/uuid"
)

// HppCalculationModel mirrors the 'hpp_calculations' table.
type HppCalculationModel struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID    `gorm:"type:uuid;not null;index"`
	ProductName     string       `gorm:"type:varchar(150);not null"`
	RawMaterialCost money.Amount `gorm:"type:numeric(15,2);not null"`
	LaborCost       money.Amount `gorm:"type:numeric(15,2);not null"`
	OverheadCost    money.Amount `gorm:"type:numeric(15,2);not null"`
	TotalUnits      int64        `gorm:"not null"`
	TotalHPP        money.Amount `gorm:"column:total_hpp;type:numeric(15,2);not null"`
	HppPerUnit      money.Amount `gorm:"type:numeric(15,2);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (HppCalculationModel) TableName() string {
	return "hpp_calculations"
}
