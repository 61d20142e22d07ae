package usecase

import (
	"context"
	"time"

	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/finance"
	"bookkeeper/internal/domain/money"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrArchiveDisabled is returned by ArchiveMonth when no archive bucket is configured.
var ErrArchiveDisabled = errors.New("report archive is not configured")

// Unit bases reported by the break-even analysis.
const (
	UnitBasisExplicit               = "explicit"
	UnitBasisIncomeTransactionCount = "income_transaction_count"
)

// ReportUsecase runs the financial engine over the owner's ledger.
type ReportUsecase interface {
	Summary(ctx context.Context, userID uuid.UUID, input *PeriodInput) (*SummaryReport, error)
	CategoryDistribution(ctx context.Context, userID uuid.UUID, input *DistributionInput) (*finance.Distribution, error)
	Trend(ctx context.Context, userID uuid.UUID, input *TrendInput) (*TrendReport, error)
	BreakEven(ctx context.Context, userID uuid.UUID, input *BreakEvenInput) (*BreakEvenReport, error)
	// Export renders the period as an XLSX workbook.
	Export(ctx context.Context, userID uuid.UUID, input *PeriodInput) (*ExportOutput, error)
	// ArchiveMonth exports the calendar month containing month and stores it in the report archive.
	ArchiveMonth(ctx context.Context, userID uuid.UUID, month time.Time) (string, error)
}

// PeriodInput is a half-open [Start, End) range. Both bounds are required.
type PeriodInput struct {
	Start time.Time
	End   time.Time
}

// DistributionInput selects the period and the kind to break down.
type DistributionInput struct {
	PeriodInput
	Kind entity.TransactionKind
}

// TrendInput selects a window of Months calendar months ending with Until's month.
// Zero values mean the current month and the default window.
type TrendInput struct {
	Until  time.Time
	Months int
}

// BreakEvenInput selects the period. UnitsSold overrides the income transaction count.
type BreakEvenInput struct {
	PeriodInput
	UnitsSold *int64
}

// SummaryReport is the period summary next to the previous period of equal length.
type SummaryReport struct {
	Start         time.Time       `json:"start"`
	End           time.Time       `json:"end"`
	Summary       finance.Summary `json:"summary"`
	Previous      finance.Summary `json:"previous"`
	IncomeGrowth  decimal.Decimal `json:"incomeGrowth"`
	ExpenseGrowth decimal.Decimal `json:"expenseGrowth"`
	// ProfitGrowth is positive whenever net profit improved, even from a loss.
	ProfitGrowth  decimal.Decimal `json:"profitGrowth"`
}

// TrendReport lists monthly totals, oldest first.
type TrendReport struct {
	Months []finance.MonthlyPoint `json:"months"`
}

// BreakEvenReport is the BEP analysis of a period with its reporting ratios.
type BreakEvenReport struct {
	Start               time.Time         `json:"start"`
	End                 time.Time         `json:"end"`
	Summary             finance.Summary   `json:"summary"`
	FixedCosts          money.Amount      `json:"fixedCosts"`
	TargetProfit        money.Amount      `json:"targetProfit"`
	SellingPricePerUnit money.Amount      `json:"sellingPricePerUnit"`
	VariableCostPerUnit money.Amount      `json:"variableCostPerUnit"`
	UnitsSold           int64             `json:"unitsSold"`
	UnitBasis           string            `json:"unitBasis"`
	Result              finance.BepResult `json:"result"`
	Ratios              finance.Ratios    `json:"ratios"`
}

// ExportOutput is a rendered report ready for download.
type ExportOutput struct {
	Filename    string
	ContentType string
	Data        []byte
}
