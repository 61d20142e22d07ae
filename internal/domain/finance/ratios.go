package finance

import (
	"bookkeeper/internal/domain/money"

	"github.com/shopspring/decimal"
)

// healthyMarginThreshold is the net margin above which a period counts as healthy.
var healthyMarginThreshold = decimal.NewFromInt(20)

// Ratios are the reporting figures shown next to a break-even analysis.
// Every ratio with a zero denominator is reported as zero.
type Ratios struct {
	ProfitMargin            decimal.Decimal `json:"profitMargin"`
	CostRatio               decimal.Decimal `json:"costRatio"`
	ROI                     decimal.Decimal `json:"roi"`
	AverageTransactionValue money.Amount    `json:"averageTransactionValue"`
	BreakEvenProgress       decimal.Decimal `json:"breakEvenProgress"`
	RevenueToBreakEven      money.Amount    `json:"revenueToBreakEven"`
	UnitsToBreakEven        int64           `json:"unitsToBreakEven"`
	TargetProfitUnits       int64           `json:"targetProfitUnits"`
	Healthy                 bool            `json:"healthy"`
}

// ComputeRatios derives the reporting ratios from a period summary and its BEP analysis.
func ComputeRatios(s Summary, in BepInput, bep BepResult, targetProfit money.Amount) Ratios {
	r := Ratios{
		ProfitMargin: Percentage(s.NetProfit, s.TotalIncome),
		CostRatio:    Percentage(s.TotalExpense, s.TotalIncome),
		ROI:          Percentage(s.NetProfit, s.TotalExpense),
	}

	if s.TransactionCount > 0 {
		r.AverageTransactionValue = s.TotalIncome.DivInt(int64(s.TransactionCount))
	}

	r.BreakEvenProgress = Percentage(s.TotalIncome, bep.BreakEvenRevenue)

	if remaining := bep.BreakEvenRevenue.Sub(s.TotalIncome); remaining.IsPositive() {
		r.RevenueToBreakEven = remaining
		if in.SellingPricePerUnit.IsPositive() {
			r.UnitsToBreakEven = ceilDiv(remaining.Decimal(), in.SellingPricePerUnit.Decimal())
		}
	}

	if !bep.Unreachable && bep.ContributionMargin.IsPositive() {
		r.TargetProfitUnits = ceilDiv(in.FixedCosts.Add(targetProfit).Decimal(), bep.ContributionMargin.Decimal())
	}

	r.Healthy = s.TotalIncome.IsPositive() && r.ProfitMargin.GreaterThan(healthyMarginThreshold)

	return r
}
