package handler_test

import (
	"net/http"
	"testing"
	"time"

	"bookkeeper/internal/domain/entity"
	domainerrors "bookkeeper/internal/domain/errors"
	"bookkeeper/internal/domain/finance"
	"bookkeeper/internal/domain/money"
	"bookkeeper/internal/domain/service"
	"bookkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeData(t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAuthentication(t *testing.T) {
	s := newTestServer(t)

	t.Run("missing header", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/v1/me", "", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/v1/me", "", "expired")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	s := newTestServer(t)
	user := &entity.User{ID: uuid.New(), Email: "rina@example.com", Name: "Rina"}

	s.authUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{IDToken: "firebase-token"}).
		Return(&usecase.AuthOutput{User: user, AccessToken: "access", Created: true}, nil).Once()

	rec := s.do(http.MethodPost, "/auth/register", `{"idToken":"firebase-token"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, "access", data["accessToken"])
	assert.Equal(t, user.ID.String(), data["user"].(map[string]any)["id"])

	s.authUC.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrIdentityTokenInvalid)).Once()

	rec = s.do(http.MethodPost, "/auth/register", `{"idToken":"forged"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "IDENTITY_TOKEN_INVALID", decode(t, rec).Error.Code)
}

func TestProfileHandler(t *testing.T) {
	s := newTestServer(t)
	user := &entity.User{ID: s.userID, Name: "Budi", BusinessName: "Warung Budi"}

	s.profileUC.EXPECT().GetProfile(mock.Anything, s.userID).Return(user, nil)
	rec := s.authed(http.MethodGet, "/api/v1/me", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Warung Budi", decodeData(t, rec)["businessName"])

	s.profileUC.EXPECT().UpdateProfile(mock.Anything, s.userID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
		return in.Name == nil && in.BusinessName != nil && *in.BusinessName == "Toko Budi"
	})).Return(user, nil)
	rec = s.authed(http.MethodPut, "/api/v1/me", `{"businessName":"Toko Budi"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTransactionHandler_Create(t *testing.T) {
	s := newTestServer(t)
	occurredAt := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	t.Run("created", func(t *testing.T) {
		s.txUC.EXPECT().CreateTransaction(mock.Anything, s.userID, mock.MatchedBy(func(in *usecase.TransactionInput) bool {
			return in.Kind == entity.KindIncome && in.Amount.Equal(money.MustParse("150000.50")) && in.OccurredAt.Equal(occurredAt)
		})).Return(&entity.Transaction{
			ID:          uuid.New(),
			UserID:      s.userID,
			Kind:        entity.KindIncome,
			Amount:      money.MustParse("150000.50"),
			Description: "Kopi",
			OccurredAt:  occurredAt,
		}, nil).Once()

		rec := s.authed(http.MethodPost, "/api/v1/transactions",
			`{"kind":"income","amount":"150000.50","description":"Kopi","occurredAt":"2024-03-05T10:00:00Z"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "150000.50", decodeData(t, rec)["amount"])
	})

	t.Run("rule violations listed per field", func(t *testing.T) {
		rec := s.authed(http.MethodPost, "/api/v1/transactions", `{"kind":"gift","amount":"10"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, string(env.Error.Details), `"field":"kind"`)
		assert.Contains(t, string(env.Error.Details), `"field":"description"`)
	})

	t.Run("amount with too many decimals", func(t *testing.T) {
		rec := s.authed(http.MethodPost, "/api/v1/transactions", `{"kind":"income","amount":"1.234","description":"x"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("engine validation carries details", func(t *testing.T) {
		s.txUC.EXPECT().CreateTransaction(mock.Anything, s.userID, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("amount must be greater than zero"))).Once()

		rec := s.authed(http.MethodPost, "/api/v1/transactions", `{"kind":"income","amount":"0","description":"x"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, `"amount must be greater than zero"`, string(decode(t, rec).Error.Details))
	})
}

func TestTransactionHandler_List_DateOnlyRangeUsesBusinessZone(t *testing.T) {
	s := newTestServer(t)
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	s.txUC.EXPECT().ListTransactions(mock.Anything, s.userID, mock.MatchedBy(func(in *usecase.ListTransactionsInput) bool {
		return in.Start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, jakarta)) &&
			in.End.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, jakarta)) &&
			in.Kind == entity.KindExpense && in.Limit == 20
	})).Return([]*entity.Transaction{}, nil)

	rec := s.authed(http.MethodGet, "/api/v1/transactions?start=2024-03-01&end=2024-03-31&kind=expense&limit=20", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

func TestTransactionHandler_BadQuery(t *testing.T) {
	s := newTestServer(t)

	rec := s.authed(http.MethodGet, "/api/v1/transactions?start=March", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, string(decode(t, rec).Error.Details), "start must be RFC3339 or YYYY-MM-DD")

	rec = s.authed(http.MethodGet, "/api/v1/transactions?limit=ten", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransactionHandler_GetAndDelete(t *testing.T) {
	s := newTestServer(t)
	txID := uuid.New()

	s.txUC.EXPECT().GetTransaction(mock.Anything, s.userID, txID).
		Return(nil, errors.WithStack(domainerrors.ErrTransactionNotFound))
	rec := s.authed(http.MethodGet, "/api/v1/transactions/"+txID.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TRANSACTION_NOT_FOUND", decode(t, rec).Error.Code)

	rec = s.authed(http.MethodGet, "/api/v1/transactions/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	s.txUC.EXPECT().DeleteTransaction(mock.Anything, s.userID, txID).Return(nil)
	rec = s.authed(http.MethodDelete, "/api/v1/transactions/"+txID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTransactionHandler_ReceiptQR(t *testing.T) {
	s := newTestServer(t)
	txID := uuid.New()

	s.txUC.EXPECT().ReceiptQR(mock.Anything, s.userID, txID).Return([]byte("\x89PNG"), nil)

	rec := s.authed(http.MethodGet, "/api/v1/transactions/"+txID.String()+"/receipt.png", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestTransactionHandler_InternalErrorHidesCause(t *testing.T) {
	s := newTestServer(t)

	s.txUC.EXPECT().ListTransactions(mock.Anything, s.userID, mock.Anything).
		Return(nil, errors.New("pq: password authentication failed"))

	rec := s.authed(http.MethodGet, "/api/v1/transactions", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	env := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.Empty(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestCustomerHandler(t *testing.T) {
	s := newTestServer(t)
	customerID := uuid.New()

	s.customerUC.EXPECT().CreateCustomer(mock.Anything, s.userID, &usecase.CustomerInput{Name: "Ibu Rina", Phone: "0812"}).
		Return(&entity.Customer{ID: customerID, Name: "Ibu Rina", Phone: "0812"}, nil)
	rec := s.authed(http.MethodPost, "/api/v1/customers", `{"name":"Ibu Rina","phone":"0812"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, customerID.String(), decodeData(t, rec)["id"])

	rec = s.authed(http.MethodPost, "/api/v1/customers", `{"name":"Ibu Rina","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	s.customerUC.EXPECT().DeleteCustomer(mock.Anything, s.userID, customerID).
		Return(errors.WithStack(domainerrors.ErrCustomerNotFound))
	rec = s.authed(http.MethodDelete, "/api/v1/customers/"+customerID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryHandler(t *testing.T) {
	s := newTestServer(t)
	kind := entity.KindIncome

	s.categoryUC.EXPECT().ListCategories(mock.Anything, s.userID, &kind).Return([]*entity.TransactionCategory{
		{ID: uuid.New(), Name: "Penjualan", Kind: entity.KindIncome, Color: "#10B981"},
	}, nil)
	rec := s.authed(http.MethodGet, "/api/v1/categories?kind=income", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Penjualan"`)

	s.categoryUC.EXPECT().CreateCategory(mock.Anything, s.userID, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrCategoryAlreadyExists))
	rec = s.authed(http.MethodPost, "/api/v1/categories", `{"name":"Penjualan","kind":"income"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.authed(http.MethodPost, "/api/v1/categories", `{"name":"Sewa","kind":"expense","color":"red"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportHandler(t *testing.T) {
	s := newTestServer(t)
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	isMarch := func(p usecase.PeriodInput) bool {
		return p.Start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, jakarta)) &&
			p.End.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, jakarta))
	}
	marchPeriod := mock.MatchedBy(func(p *usecase.PeriodInput) bool { return isMarch(*p) })

	t.Run("summary", func(t *testing.T) {
		s.reportUC.EXPECT().Summary(mock.Anything, s.userID, marchPeriod).Return(&usecase.SummaryReport{
			Summary: finance.Summary{TotalIncome: money.MustParse("150"), NetProfit: money.MustParse("150"), TransactionCount: 1},
		}, nil).Once()

		rec := s.authed(http.MethodGet, "/api/v1/reports/summary?start=2024-03-01&end=2024-03-31", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"totalIncome":"150.00"`)
	})

	t.Run("category distribution", func(t *testing.T) {
		s.reportUC.EXPECT().CategoryDistribution(mock.Anything, s.userID, mock.MatchedBy(func(in *usecase.DistributionInput) bool {
			return isMarch(in.PeriodInput) && in.Kind == entity.KindExpense
		})).Return(&finance.Distribution{Kind: entity.KindExpense}, nil).Once()

		rec := s.authed(http.MethodGet, "/api/v1/reports/categories?start=2024-03-01&end=2024-03-31&kind=expense", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("trend", func(t *testing.T) {
		s.reportUC.EXPECT().Trend(mock.Anything, s.userID, mock.MatchedBy(func(in *usecase.TrendInput) bool {
			return in.Until.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, jakarta)) && in.Months == 3
		})).Return(&usecase.TrendReport{}, nil).Once()

		rec := s.authed(http.MethodGet, "/api/v1/reports/trend?months=3&until=2024-06-01", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("break-even with explicit units", func(t *testing.T) {
		s.reportUC.EXPECT().BreakEven(mock.Anything, s.userID, mock.MatchedBy(func(in *usecase.BreakEvenInput) bool {
			return in.UnitsSold != nil && *in.UnitsSold == 40 && isMarch(in.PeriodInput)
		})).Return(&usecase.BreakEvenReport{UnitBasis: usecase.UnitBasisExplicit}, nil).Once()

		rec := s.authed(http.MethodGet, "/api/v1/reports/break-even?start=2024-03-01&end=2024-03-31&unitsSold=40", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, usecase.UnitBasisExplicit, decodeData(t, rec)["unitBasis"])

		rec = s.authed(http.MethodGet, "/api/v1/reports/break-even?start=2024-03-01&end=2024-03-31&unitsSold=many", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("export", func(t *testing.T) {
		s.reportUC.EXPECT().Export(mock.Anything, s.userID, marchPeriod).Return(&usecase.ExportOutput{
			Filename:    "ledger_2024-03-01_2024-03-31.xlsx",
			ContentType: service.ReportContentTypeXLSX,
			Data:        []byte("PK"),
		}, nil).Once()

		rec := s.authed(http.MethodGet, "/api/v1/reports/export.xlsx?start=2024-03-01&end=2024-03-31", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, service.ReportContentTypeXLSX, rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "ledger_2024-03-01_2024-03-31.xlsx")
	})
}

func TestHppHandler(t *testing.T) {
	s := newTestServer(t)
	price := money.MustParse("15000")
	margin := decimalOf(t, "33.33")

	s.hppUC.EXPECT().PreviewHpp(mock.Anything, mock.MatchedBy(func(in *usecase.HppInput) bool {
		return in.TotalUnits == 100 && in.SellingPricePerUnit != nil && in.SellingPricePerUnit.Equal(price)
	})).Return(&usecase.HppOutput{
		Calculation:  &entity.HppCalculation{ProductName: "Keripik", TotalUnits: 100, HppPerUnit: money.MustParse("10000")},
		SellingPrice: &price,
		ProfitMargin: &margin,
	}, nil)

	rec := s.authed(http.MethodPost, "/api/v1/hpp-calculations/preview",
		`{"productName":"Keripik","rawMaterialCost":"500000","laborCost":"300000","overheadCost":"200000","totalUnits":100,"sellingPricePerUnit":"15000"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	calc := decodeData(t, rec)["calculation"].(map[string]any)
	assert.Equal(t, "10000.00", calc["hppPerUnit"])
	assert.NotContains(t, calc, "id")

	calcID := uuid.New()
	s.hppUC.EXPECT().DeleteHpp(mock.Anything, s.userID, calcID).Return(nil)
	rec = s.authed(http.MethodDelete, "/api/v1/hpp-calculations/"+calcID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSettingsHandler(t *testing.T) {
	s := newTestServer(t)

	s.settingsUC.EXPECT().GetSettings(mock.Anything, s.userID).Return(entity.DefaultBusinessSettings(s.userID), nil)
	rec := s.authed(http.MethodGet, "/api/v1/business-settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0.00", decodeData(t, rec)["fixedCosts"])

	s.settingsUC.EXPECT().UpsertSettings(mock.Anything, s.userID, &usecase.SettingsInput{
		FixedCosts:          money.MustParse("5000000"),
		TargetProfit:        money.MustParse("1000000"),
		AverageSellingPrice: money.MustParse("25000"),
	}).Return(&entity.BusinessSettings{UserID: s.userID, FixedCosts: money.MustParse("5000000")}, nil)
	rec = s.authed(http.MethodPut, "/api/v1/business-settings",
		`{"fixedCosts":"5000000","targetProfit":1000000,"averageSellingPrice":"25000"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "5000000.00", decodeData(t, rec)["fixedCosts"])
}

func TestTransactionHandler_UpdatePartial(t *testing.T) {
	s := newTestServer(t)
	txID := uuid.New()
	businessDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("only sent fields reach the use case", func(t *testing.T) {
		s.txUC.EXPECT().UpdateTransaction(mock.Anything, s.userID, txID, mock.MatchedBy(func(p *usecase.TransactionPatch) bool {
			return p.Description != nil && *p.Description == "fixed typo" &&
				p.Kind == nil && p.Amount == nil && p.OccurredAt == nil &&
				p.CategoryID.Set && p.CategoryID.Value == nil &&
				!p.CustomerID.Set
		})).Return(&entity.Transaction{
			ID:          txID,
			UserID:      s.userID,
			Kind:        entity.KindIncome,
			Amount:      money.FromInt(150000),
			Description: "fixed typo",
			OccurredAt:  businessDate,
		}, nil).Once()

		rec := s.authed(http.MethodPatch, "/api/v1/transactions/"+txID.String(), `{"description":"fixed typo","categoryId":null}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "fixed typo", decodeData(t, rec)["description"])
	})

	t.Run("amount beyond store column", func(t *testing.T) {
		rec := s.authed(http.MethodPut, "/api/v1/transactions/"+txID.String(), `{"amount":"123456789012345678.91"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown kind", func(t *testing.T) {
		rec := s.authed(http.MethodPut, "/api/v1/transactions/"+txID.String(), `{"kind":"transfer"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCustomerHandler_UpdatePartial(t *testing.T) {
	s := newTestServer(t)
	customerID := uuid.New()

	s.customerUC.EXPECT().UpdateCustomer(mock.Anything, s.userID, customerID, mock.MatchedBy(func(p *usecase.CustomerPatch) bool {
		return p.Phone != nil && *p.Phone == "0813" && p.Name == nil && p.Email == nil && p.Address == nil
	})).Return(&entity.Customer{ID: customerID, Name: "Ibu Rina", Phone: "0813", Email: "rina@example.com"}, nil)

	rec := s.authed(http.MethodPatch, "/api/v1/customers/"+customerID.String(), `{"phone":"0813"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rina@example.com", decodeData(t, rec)["email"])

	rec = s.authed(http.MethodPut, "/api/v1/customers/"+customerID.String(), `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
