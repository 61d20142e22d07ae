package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bookkeeper/internal/domain/entity"
	domainerrors "bookkeeper/internal/domain/errors"
	"bookkeeper/internal/domain/repository"
	"bookkeeper/internal/domain/service"
	mockRepo "bookkeeper/internal/mocks/repository"
	mockService "bookkeeper/internal/mocks/service"
	"bookkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceFixtures struct {
	ledgerRepo   *mockRepo.MockLedgerRepository
	categoryRepo *mockRepo.MockCategoryRepository
	customerRepo *mockRepo.MockCustomerRepository
	userRepo     *mockRepo.MockUserRepository
	settingsRepo *mockRepo.MockBusinessSettingsRepository
	exporter     *mockService.MockReportExporter
	archive      *mockService.MockReportArchive
	publisher    *mockService.MockEventPublisher
}

func createTestReportService(t *testing.T) (*reportService, reportServiceFixtures) {
	fx := reportServiceFixtures{
		ledgerRepo:   mockRepo.NewMockLedgerRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		settingsRepo: mockRepo.NewMockBusinessSettingsRepository(t),
		exporter:     mockService.NewMockReportExporter(t),
		archive:      mockService.NewMockReportArchive(t),
		publisher:    mockService.NewMockEventPublisher(t),
	}

	srv := NewReportService(ReportServiceParams{
		LedgerRepo:   fx.ledgerRepo,
		CategoryRepo: fx.categoryRepo,
		CustomerRepo: fx.customerRepo,
		UserRepo:     fx.userRepo,
		SettingsRepo: fx.settingsRepo,
		Exporter:     fx.exporter,
		Archive:      fx.archive,
		Publisher:    fx.publisher,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*reportService)

	return srv, fx
}

func ledgerTx(kind entity.TransactionKind, value string, occurredAt time.Time, categoryID *uuid.UUID) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New(),
		Kind:       kind,
		Amount:     amount(value),
		OccurredAt: occurredAt,
		CategoryID: categoryID,
	}
}

func march2024() usecase.PeriodInput {
	return usecase.PeriodInput{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestReportService_Summary(t *testing.T) {
	srv, fx := createTestReportService(t)
	ctx := context.Background()
	userID := uuid.New()
	period := march2024()

	fx.ledgerRepo.EXPECT().ListByOwner(ctx, userID, repository.TransactionFilter{
		Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   period.End,
	}).Return([]*entity.Transaction{
		ledgerTx(entity.KindIncome, "100", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), nil),
		ledgerTx(entity.KindIncome, "150", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), nil),
		ledgerTx(entity.KindExpense, "50", time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC), nil),
	}, nil)

	report, err := srv.Summary(ctx, userID, &period)
	require.NoError(t, err)
	assert.Equal(t, "150.00", report.Summary.TotalIncome.String())
	assert.Equal(t, "50.00", report.Summary.TotalExpense.String())
	assert.Equal(t, "100.00", report.Summary.NetProfit.String())
	assert.Equal(t, 2, report.Summary.TransactionCount)
	assert.Equal(t, "100.00", report.Previous.TotalIncome.String())
	assert.Equal(t, "50", report.IncomeGrowth.String())
	assert.Equal(t, "100", report.ExpenseGrowth.String())
	assert.Equal(t, "0", report.ProfitGrowth.String())
}

func TestReportService_Summary_InvalidPeriod(t *testing.T) {
	srv, _ := createTestReportService(t)
	period := march2024()
	period.Start, period.End = period.End, period.Start

	_, err := srv.Summary(context.Background(), uuid.New(), &period)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReportService_CategoryDistribution(t *testing.T) {
	srv, fx := createTestReportService(t)
	ctx := context.Background()
	userID := uuid.New()
	period := march2024()
	food := &entity.TransactionCategory{ID: uuid.New(), Name: "Makanan", Kind: entity.KindIncome, Color: "#10B981"}
	at := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	kind := entity.KindIncome

	fx.ledgerRepo.EXPECT().ListByOwner(ctx, userID, repository.TransactionFilter{
		Start: period.Start,
		End:   period.End,
		Kind:  entity.KindIncome,
	}).Return([]*entity.Transaction{
		ledgerTx(entity.KindIncome, "300", at, &food.ID),
		ledgerTx(entity.KindIncome, "100", at, nil),
	}, nil)
	fx.categoryRepo.EXPECT().ListByOwner(ctx, userID, &kind).Return([]*entity.TransactionCategory{food}, nil)

	dist, err := srv.CategoryDistribution(ctx, userID, &usecase.DistributionInput{PeriodInput: period, Kind: entity.KindIncome})
	require.NoError(t, err)
	require.Len(t, dist.Buckets, 2)
	assert.Equal(t, "Makanan", dist.Buckets[0].Name)
	assert.Equal(t, "75", dist.Buckets[0].Percentage.String())
	assert.Equal(t, "Uncategorized", dist.Buckets[1].Name)
	assert.Equal(t, "400.00", dist.Total.String())
}

func TestReportService_CategoryDistribution_InvalidKind(t *testing.T) {
	srv, _ := createTestReportService(t)

	_, err := srv.CategoryDistribution(context.Background(), uuid.New(), &usecase.DistributionInput{PeriodInput: march2024(), Kind: ""})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReportService_Trend(t *testing.T) {
	srv, fx := createTestReportService(t)
	ctx := context.Background()
	userID := uuid.New()
	srv.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }

	fx.ledgerRepo.EXPECT().ListByOwner(ctx, userID, repository.TransactionFilter{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}).Return([]*entity.Transaction{
		ledgerTx(entity.KindIncome, "10", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), nil),
		ledgerTx(entity.KindExpense, "4", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), nil),
	}, nil)

	report, err := srv.Trend(ctx, userID, &usecase.TrendInput{Months: 3})
	require.NoError(t, err)
	require.Len(t, report.Months, 3)
	assert.Equal(t, "2024-01", report.Months[0].Month)
	assert.Equal(t, "10.00", report.Months[0].Net.String())
	assert.True(t, report.Months[1].Income.IsZero())
	assert.Equal(t, "-4.00", report.Months[2].Net.String())
}

func TestReportService_Trend_TooManyMonths(t *testing.T) {
	srv, _ := createTestReportService(t)

	_, err := srv.Trend(context.Background(), uuid.New(), &usecase.TrendInput{Months: 25})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReportService_BreakEven(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	period := march2024()
	at := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	txs := []*entity.Transaction{
		ledgerTx(entity.KindIncome, "25000", at, nil),
		ledgerTx(entity.KindIncome, "25000", at, nil),
		ledgerTx(entity.KindIncome, "25000", at, nil),
		ledgerTx(entity.KindExpense, "30000", at, nil),
	}
	settings := &entity.BusinessSettings{
		UserID:              userID,
		FixedCosts:          amount("1000000"),
		TargetProfit:        amount("500000"),
		AverageSellingPrice: amount("25000"),
	}
	filter := repository.TransactionFilter{Start: period.Start, End: period.End}

	t.Run("income transaction count as units", func(t *testing.T) {
		srv, fx := createTestReportService(t)
		fx.ledgerRepo.EXPECT().ListByOwner(ctx, userID, filter).Return(txs, nil)
		fx.settingsRepo.EXPECT().FindByOwner(ctx, userID).Return(settings, nil)

		report, err := srv.BreakEven(ctx, userID, &usecase.BreakEvenInput{PeriodInput: period})
		require.NoError(t, err)
		assert.Equal(t, usecase.UnitBasisIncomeTransactionCount, report.UnitBasis)
		assert.Equal(t, int64(3), report.UnitsSold)
		assert.Equal(t, "10000.00", report.VariableCostPerUnit.String())
		assert.Equal(t, "15000.00", report.Result.ContributionMargin.String())
		assert.Equal(t, int64(67), report.Result.BreakEvenUnits)
		assert.Equal(t, "1675000.00", report.Result.BreakEvenRevenue.String())
		assert.False(t, report.Result.Unreachable)
	})

	t.Run("explicit units", func(t *testing.T) {
		srv, fx := createTestReportService(t)
		units := int64(10)
		fx.ledgerRepo.EXPECT().ListByOwner(ctx, userID, filter).Return(txs, nil)
		fx.settingsRepo.EXPECT().FindByOwner(ctx, userID).Return(settings, nil)

		report, err := srv.BreakEven(ctx, userID, &usecase.BreakEvenInput{PeriodInput: period, UnitsSold: &units})
		require.NoError(t, err)
		assert.Equal(t, usecase.UnitBasisExplicit, report.UnitBasis)
		assert.Equal(t, "3000.00", report.VariableCostPerUnit.String())
		assert.Equal(t, int64(46), report.Result.BreakEvenUnits)
	})

	t.Run("no settings saved is unreachable", func(t *testing.T) {
		srv, fx := createTestReportService(t)
		fx.ledgerRepo.EXPECT().ListByOwner(ctx, userID, filter).Return(txs, nil)
		fx.settingsRepo.EXPECT().FindByOwner(ctx, userID).Return(nil, repository.ErrBusinessSettingsNotFound)

		report, err := srv.BreakEven(ctx, userID, &usecase.BreakEvenInput{PeriodInput: period})
		require.NoError(t, err)
		assert.True(t, report.Result.Unreachable)
		assert.Zero(t, report.Result.BreakEvenUnits)
	})

	t.Run("negative units", func(t *testing.T) {
		srv, _ := createTestReportService(t)
		units := int64(-1)

		_, err := srv.BreakEven(ctx, userID, &usecase.BreakEvenInput{PeriodInput: period, UnitsSold: &units})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func expectLedgerReport(ctx context.Context, fx reportServiceFixtures, userID uuid.UUID, period usecase.PeriodInput) {
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Name: "Budi", BusinessName: "Warung Budi"}, nil)
	fx.ledgerRepo.EXPECT().ListByOwner(ctx, userID, repository.TransactionFilter{Start: period.Start, End: period.End}).
		Return([]*entity.Transaction{ledgerTx(entity.KindIncome, "10", period.Start, nil)}, nil)
	fx.categoryRepo.EXPECT().ListByOwner(ctx, userID, (*entity.TransactionKind)(nil)).Return(nil, nil)
	fx.customerRepo.EXPECT().ListByOwner(ctx, userID).Return(nil, nil)
	fx.exporter.EXPECT().Export(ctx, mock.MatchedBy(func(r *service.LedgerReport) bool {
		return r.BusinessName == "Warung Budi" && len(r.Transactions) == 1 && r.Summary.TotalIncome.Equal(amount("10"))
	})).Return([]byte("xlsx"), nil)
}

func TestReportService_Export(t *testing.T) {
	srv, fx := createTestReportService(t)
	ctx := context.Background()
	userID := uuid.New()
	period := march2024()
	expectLedgerReport(ctx, fx, userID, period)

	out, err := srv.Export(ctx, userID, &period)
	require.NoError(t, err)
	assert.Equal(t, "ledger_2024-03-01_2024-03-31.xlsx", out.Filename)
	assert.Equal(t, service.ReportContentTypeXLSX, out.ContentType)
	assert.Equal(t, []byte("xlsx"), out.Data)
}

func TestReportService_ArchiveMonth(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("disabled", func(t *testing.T) {
		srv, fx := createTestReportService(t)
		fx.archive.EXPECT().Enabled().Return(false)

		_, err := srv.ArchiveMonth(ctx, userID, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, usecase.ErrArchiveDisabled)
	})

	t.Run("stores the month workbook", func(t *testing.T) {
		srv, fx := createTestReportService(t)
		period := march2024()
		wantKey := fmt.Sprintf("%s/2024-03.xlsx", userID)

		fx.archive.EXPECT().Enabled().Return(true)
		expectLedgerReport(ctx, fx, userID, period)
		fx.archive.EXPECT().Put(ctx, wantKey, []byte("xlsx"), service.ReportContentTypeXLSX).Return(nil)
		fx.publisher.EXPECT().PublishLedgerEvent(ctx, mock.MatchedBy(func(e *service.LedgerEvent) bool {
			return e.Type == service.EventReportArchived && e.EntityID == wantKey
		})).Return(nil)

		key, err := srv.ArchiveMonth(ctx, userID, time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, wantKey, key)
	})
}
