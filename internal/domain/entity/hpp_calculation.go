package entity

import (
	"time"

	"bookkeeper/internal/domain/money"

	"github.com/google/uuid"
)

// HppCalculation is a persisted cost-of-goods (Harga Pokok Produksi) snapshot
// for one production batch. TotalHPP and HppPerUnit are always derived from the
// cost inputs and TotalUnits; callers never set them directly.
type HppCalculation struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ProductName     string
	RawMaterialCost money.Amount
	LaborCost       money.Amount
	OverheadCost    money.Amount
	TotalUnits      int64
	TotalHPP        money.Amount // RawMaterialCost + LaborCost + OverheadCost.
	HppPerUnit      money.Amount // TotalHPP / TotalUnits, rounded half-up to cents.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
