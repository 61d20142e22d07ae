package usecase

import (
	"context"

	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HppUsecase computes and stores cost-of-goods calculations.
type HppUsecase interface {
	// PreviewHpp calculates without persisting.
	PreviewHpp(ctx context.Context, input *HppInput) (*HppOutput, error)
	CreateHpp(ctx context.Context, userID uuid.UUID, input *HppInput) (*HppOutput, error)
	ListHpp(ctx context.Context, userID uuid.UUID) ([]*entity.HppCalculation, error)
	// UpdateHpp replaces the inputs and recomputes the derived totals.
	UpdateHpp(ctx context.Context, userID, calculationID uuid.UUID, input *HppInput) (*HppOutput, error)
	DeleteHpp(ctx context.Context, userID, calculationID uuid.UUID) error
}

// HppInput holds the cost inputs of a production batch.
type HppInput struct {
	ProductName     string       `json:"productName" validate:"required,max=150"`
	RawMaterialCost money.Amount `json:"rawMaterialCost"`
	LaborCost       money.Amount `json:"laborCost"`
	OverheadCost    money.Amount `json:"overheadCost"`
	TotalUnits      int64        `json:"totalUnits"`
	// SellingPricePerUnit is optional; when set the output reports margin and markup.
	SellingPricePerUnit *money.Amount `json:"sellingPricePerUnit,omitempty"`
}

// HppOutput is a calculation plus pricing figures when a selling price was given.
type HppOutput struct {
	Calculation  *entity.HppCalculation `json:"calculation"`
	SellingPrice *money.Amount          `json:"sellingPrice,omitempty"`
	ProfitMargin *decimal.Decimal       `json:"profitMargin,omitempty"`
	Markup       *decimal.Decimal       `json:"markup,omitempty"`
}
