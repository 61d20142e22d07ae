package finance

import (
	"time"

	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HppInput are the production costs of one batch.
type HppInput struct {
	RawMaterialCost money.Amount
	LaborCost       money.Amount
	OverheadCost    money.Amount
	TotalUnits      int64
}

// HppResult is the derived cost of goods produced.
type HppResult struct {
	TotalHPP   money.Amount `json:"totalHpp"`
	HppPerUnit money.Amount `json:"hppPerUnit"`
}

// Validate checks the inputs before any arithmetic happens.
func (in HppInput) Validate() error {
	if in.TotalUnits < 1 {
		return invalid("totalUnits", "must be at least 1")
	}

	if in.RawMaterialCost.IsNegative() {
		return invalid("rawMaterialCost", "must not be negative")
	}

	if in.LaborCost.IsNegative() {
		return invalid("laborCost", "must not be negative")
	}

	if in.OverheadCost.IsNegative() {
		return invalid("overheadCost", "must not be negative")
	}

	return nil
}

// CalculateHPP sums the batch costs and spreads them over the produced units.
// The per-unit value is rounded half-up to cents.
func CalculateHPP(in HppInput) (HppResult, error) {
	if err := in.Validate(); err != nil {
		return HppResult{}, err
	}

	total := money.Sum(in.RawMaterialCost, in.LaborCost, in.OverheadCost)
	if !total.InRange() {
		return HppResult{}, invalid("totalHpp", "exceeds the largest storable amount")
	}

	return HppResult{
		TotalHPP:   total,
		HppPerUnit: total.DivInt(in.TotalUnits),
	}, nil
}

// NewHppCalculation builds a persistable calculation whose derived fields come
// from a fresh CalculateHPP over the given inputs.
func NewHppCalculation(userID uuid.UUID, productName string, in HppInput, now time.Time) (*entity.HppCalculation, error) {
	if productName == "" {
		return nil, invalid("productName", "is required")
	}

	calc := &entity.HppCalculation{
		ID:              uuid.New(),
		UserID:          userID,
		ProductName:     productName,
		RawMaterialCost: in.RawMaterialCost,
		LaborCost:       in.LaborCost,
		OverheadCost:    in.OverheadCost,
		TotalUnits:      in.TotalUnits,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := Recalculate(calc); err != nil {
		return nil, err
	}

	return calc, nil
}

// Recalculate overwrites the derived fields of calc from its stored inputs.
func Recalculate(calc *entity.HppCalculation) error {
	res, err := CalculateHPP(HppInput{
		RawMaterialCost: calc.RawMaterialCost,
		LaborCost:       calc.LaborCost,
		OverheadCost:    calc.OverheadCost,
		TotalUnits:      calc.TotalUnits,
	})
	if err != nil {
		return err
	}

	calc.TotalHPP = res.TotalHPP
	calc.HppPerUnit = res.HppPerUnit

	return nil
}

// Markup is (price - cost) / cost * 100, zero when cost is zero.
func Markup(sellingPrice, cost money.Amount) decimal.Decimal {
	return Percentage(sellingPrice.Sub(cost), cost)
}

// ProfitMarginOnPrice is (price - cost) / price * 100, zero when price is zero.
func ProfitMarginOnPrice(sellingPrice, cost money.Amount) decimal.Decimal {
	return Percentage(sellingPrice.Sub(cost), sellingPrice)
}
