package finance

import (
	"bookkeeper/internal/domain/money"
)

// BepInput are the per-period figures a break-even analysis needs.
type BepInput struct {
	FixedCosts          money.Amount
	VariableCostPerUnit money.Amount
	SellingPricePerUnit money.Amount
}

// BepResult is the outcome of a break-even analysis. When Unreachable is set the
// contribution margin is not positive and BreakEvenUnits and BreakEvenRevenue are zero.
type BepResult struct {
	ContributionMargin money.Amount `json:"contributionMargin"`
	BreakEvenUnits     int64        `json:"breakEvenUnits"`
	BreakEvenRevenue   money.Amount `json:"breakEvenRevenue"`
	Unreachable        bool         `json:"unreachable"`
}

// Validate rejects negative inputs.
func (in BepInput) Validate() error {
	if in.FixedCosts.IsNegative() {
		return invalid("fixedCosts", "must not be negative")
	}

	if in.VariableCostPerUnit.IsNegative() {
		return invalid("variableCostPerUnit", "must not be negative")
	}

	if in.SellingPricePerUnit.IsNegative() {
		return invalid("sellingPricePerUnit", "must not be negative")
	}

	return nil
}

// AnalyzeBreakEven computes how many units must be sold to cover fixed costs.
// Units are rounded up: selling a fraction of a unit is not possible.
func AnalyzeBreakEven(in BepInput) (BepResult, error) {
	if err := in.Validate(); err != nil {
		return BepResult{}, err
	}

	cm := in.SellingPricePerUnit.Sub(in.VariableCostPerUnit)
	if !cm.IsPositive() {
		return BepResult{ContributionMargin: cm, Unreachable: true}, nil
	}

	units := ceilDiv(in.FixedCosts.Decimal(), cm.Decimal())

	return BepResult{
		ContributionMargin: cm,
		BreakEvenUnits:     units,
		BreakEvenRevenue:   in.SellingPricePerUnit.MulInt(units),
	}, nil
}

// VariableCostPerUnit spreads a period's expenses over the units sold, rounded
// half-up to cents. No units means no variable cost can be attributed.
func VariableCostPerUnit(totalExpense money.Amount, unitsSold int64) money.Amount {
	if unitsSold <= 0 {
		return money.Zero
	}

	return totalExpense.DivInt(unitsSold)
}
