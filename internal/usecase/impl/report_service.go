package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bookkeeper/config"
	deliverycontext "bookkeeper/internal/delivery/context"
	"bookkeeper/internal/domain/entity"
	domainerrors "bookkeeper/internal/domain/errors"
	"bookkeeper/internal/domain/finance"
	"bookkeeper/internal/domain/repository"
	"bookkeeper/internal/domain/service"
	"bookkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reportService struct {
	ledgerRepo         repository.LedgerRepository
	categoryRepo       repository.CategoryRepository
	customerRepo       repository.CustomerRepository
	userRepo           repository.UserRepository
	settingsRepo       repository.BusinessSettingsRepository
	exporter           service.ReportExporter
	archive            service.ReportArchive
	publisher          service.EventPublisher
	uncategorizedLabel string
	location           *time.Location
	now                func() time.Time
	logger             *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	LedgerRepo   repository.LedgerRepository
	CategoryRepo repository.CategoryRepository
	CustomerRepo repository.CustomerRepository
	UserRepo     repository.UserRepository
	SettingsRepo repository.BusinessSettingsRepository
	Exporter     service.ReportExporter
	Archive      service.ReportArchive
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReportService creates the reporting use case.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	srv := &reportService{
		ledgerRepo:   params.LedgerRepo,
		categoryRepo: params.CategoryRepo,
		customerRepo: params.CustomerRepo,
		userRepo:     params.UserRepo,
		settingsRepo: params.SettingsRepo,
		exporter:     params.Exporter,
		archive:      params.Archive,
		publisher:    params.Publisher,
		location:     time.UTC,
		now:          time.Now,
		logger:       params.Logger,
	}

	if params.Config != nil && params.Config.Ledger != nil {
		srv.uncategorizedLabel = params.Config.Ledger.UncategorizedLabel
		srv.location = params.Config.Ledger.Location()
	}

	return srv
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Summary aggregates the period and compares it with the previous period of equal length.
func (srv *reportService) Summary(ctx context.Context, userID uuid.UUID, input *usecase.PeriodInput) (*usecase.SummaryReport, error) {
	period, err := finance.NewPeriod(input.Start, input.End)
	if err != nil {
		return nil, fromEngineError(err)
	}
	previous := period.Previous()

	// One query covers both periods.
	txs, err := srv.listPeriod(ctx, userID, finance.Period{Start: previous.Start, End: period.End}, "")
	if err != nil {
		return nil, err
	}

	current := finance.SummarizePeriod(txs, period)
	before := finance.SummarizePeriod(txs, previous)

	return &usecase.SummaryReport{
		Start:         period.Start,
		End:           period.End,
		Summary:       current,
		Previous:      before,
		IncomeGrowth:  finance.GrowthRate(current.TotalIncome, before.TotalIncome),
		ExpenseGrowth: finance.GrowthRate(current.TotalExpense, before.TotalExpense),
		ProfitGrowth:  finance.GrowthRate(current.NetProfit, before.NetProfit),
	}, nil
}

func (srv *reportService) CategoryDistribution(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.DistributionInput,
) (*finance.Distribution, error) {
	if !input.Kind.IsValid() {
		return nil, validationFailed("kind", "must be income or expense")
	}

	period, err := finance.NewPeriod(input.Start, input.End)
	if err != nil {
		return nil, fromEngineError(err)
	}

	txs, err := srv.listPeriod(ctx, userID, period, input.Kind)
	if err != nil {
		return nil, err
	}

	categories, err := srv.categoryRepo.ListByOwner(ctx, userID, &input.Kind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	distribution := finance.Distribute(txs, input.Kind, categories, finance.DistributionOptions{
		UncategorizedLabel: srv.uncategorizedLabel,
	})

	return &distribution, nil
}

func (srv *reportService) Trend(ctx context.Context, userID uuid.UUID, input *usecase.TrendInput) (*usecase.TrendReport, error) {
	months := input.Months
	if months == 0 {
		months = finance.DefaultTrendMonths
	}

	until := input.Until
	if until.IsZero() {
		until = srv.now()
	}

	window, err := finance.TrendWindow(until.In(srv.location), months)
	if err != nil {
		return nil, fromEngineError(err)
	}

	txs, err := srv.listPeriod(ctx, userID, window, "")
	if err != nil {
		return nil, err
	}

	return &usecase.TrendReport{Months: finance.MonthlyTrend(txs, window)}, nil
}

// BreakEven combines the period summary with the owner's business settings.
// Without an explicit unit count the number of income transactions stands in for units sold.
func (srv *reportService) BreakEven(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.BreakEvenInput,
) (*usecase.BreakEvenReport, error) {
	period, err := finance.NewPeriod(input.Start, input.End)
	if err != nil {
		return nil, fromEngineError(err)
	}

	if input.UnitsSold != nil && *input.UnitsSold < 0 {
		return nil, validationFailed("unitsSold", "must not be negative")
	}

	txs, err := srv.listPeriod(ctx, userID, period, "")
	if err != nil {
		return nil, err
	}
	summary := finance.Summarize(txs)

	settings, err := loadSettings(ctx, srv.settingsRepo, userID)
	if err != nil {
		return nil, err
	}

	unitsSold := int64(summary.IncomeCount)
	unitBasis := usecase.UnitBasisIncomeTransactionCount
	if input.UnitsSold != nil {
		unitsSold = *input.UnitsSold
		unitBasis = usecase.UnitBasisExplicit
	}

	bepInput := finance.BepInput{
		FixedCosts:          settings.FixedCosts,
		VariableCostPerUnit: finance.VariableCostPerUnit(summary.TotalExpense, unitsSold),
		SellingPricePerUnit: settings.AverageSellingPrice,
	}
	result, err := finance.AnalyzeBreakEven(bepInput)
	if err != nil {
		return nil, fromEngineError(err)
	}

	return &usecase.BreakEvenReport{
		Start:               period.Start,
		End:                 period.End,
		Summary:             summary,
		FixedCosts:          settings.FixedCosts,
		TargetProfit:        settings.TargetProfit,
		SellingPricePerUnit: settings.AverageSellingPrice,
		VariableCostPerUnit: bepInput.VariableCostPerUnit,
		UnitsSold:           unitsSold,
		UnitBasis:           unitBasis,
		Result:              result,
		Ratios:              finance.ComputeRatios(summary, bepInput, result, settings.TargetProfit),
	}, nil
}

func (srv *reportService) Export(ctx context.Context, userID uuid.UUID, input *usecase.PeriodInput) (*usecase.ExportOutput, error) {
	period, err := finance.NewPeriod(input.Start, input.End)
	if err != nil {
		return nil, fromEngineError(err)
	}

	return srv.export(ctx, userID, period)
}

// ArchiveMonth stores the month's workbook under <userID>/<YYYY-MM>.xlsx.
func (srv *reportService) ArchiveMonth(ctx context.Context, userID uuid.UUID, month time.Time) (string, error) {
	if !srv.archive.Enabled() {
		return "", errors.WithStack(usecase.ErrArchiveDisabled)
	}

	period := finance.MonthOf(month.In(srv.location))
	out, err := srv.export(ctx, userID, period)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s.xlsx", userID, period.Start.Format("2006-01"))
	if err := srv.archive.Put(ctx, key, out.Data, out.ContentType); err != nil {
		return "", errors.Wrap(err, "failed to archive report")
	}

	event := &service.LedgerEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       service.EventReportArchived,
		UserID:     userID.String(),
		EntityID:   key,
		OccurredAt: period.Start,
	}
	if err := srv.publisher.PublishLedgerEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish archive event", slog.String("key", key), slog.Any("error", err))
	}

	return key, nil
}

func (srv *reportService) export(ctx context.Context, userID uuid.UUID, period finance.Period) (*usecase.ExportOutput, error) {
	report, err := srv.buildLedgerReport(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	data, err := srv.exporter.Export(ctx, report)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export report")
	}

	srv.log(ctx).Info("Report exported",
		slog.String("userID", userID.String()),
		slog.Time("start", period.Start),
		slog.Time("end", period.End),
		slog.Int("transactions", len(report.Transactions)),
	)

	// End is exclusive, so the last covered day is the one before it.
	filename := fmt.Sprintf("ledger_%s_%s.xlsx",
		period.Start.Format(time.DateOnly),
		period.End.Add(-time.Nanosecond).Format(time.DateOnly),
	)

	return &usecase.ExportOutput{
		Filename:    filename,
		ContentType: service.ReportContentTypeXLSX,
		Data:        data,
	}, nil
}

func (srv *reportService) buildLedgerReport(ctx context.Context, userID uuid.UUID, period finance.Period) (*service.LedgerReport, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	txs, err := srv.listPeriod(ctx, userID, period, "")
	if err != nil {
		return nil, err
	}

	categories, err := srv.categoryRepo.ListByOwner(ctx, userID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	customers, err := srv.customerRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	opts := finance.DistributionOptions{UncategorizedLabel: srv.uncategorizedLabel}

	return &service.LedgerReport{
		BusinessName:        user.DisplayBusinessName(),
		Period:              period,
		Summary:             finance.Summarize(txs),
		IncomeDistribution:  finance.Distribute(txs, entity.KindIncome, categories, opts),
		ExpenseDistribution: finance.Distribute(txs, entity.KindExpense, categories, opts),
		Transactions:        txs,
		Categories:          categories,
		Customers:           customers,
	}, nil
}

// listPeriod loads every transaction of the owner inside period, optionally of one kind.
func (srv *reportService) listPeriod(
	ctx context.Context,
	userID uuid.UUID,
	period finance.Period,
	kind entity.TransactionKind,
) ([]*entity.Transaction, error) {
	txs, err := srv.ledgerRepo.ListByOwner(ctx, userID, repository.TransactionFilter{
		Start: period.Start,
		End:   period.End,
		Kind:  kind,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return txs, nil
}
