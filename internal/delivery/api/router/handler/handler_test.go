package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	_ "time/tzdata"

	"bookkeeper/config"
	"bookkeeper/internal/delivery/api"
	"bookkeeper/internal/delivery/api/middleware"
	"bookkeeper/internal/delivery/api/router"
	"bookkeeper/internal/delivery/api/router/handler"
	"bookkeeper/internal/domain/service"
	mockService "bookkeeper/internal/mocks/service"
	mockUsecase "bookkeeper/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type testServer struct {
	echo       *echo.Echo
	userID     uuid.UUID
	tokens     *mockService.MockTokenService
	authUC     *mockUsecase.MockAuthUsecase
	profileUC  *mockUsecase.MockProfileUsecase
	txUC       *mockUsecase.MockTransactionUsecase
	customerUC *mockUsecase.MockCustomerUsecase
	categoryUC *mockUsecase.MockCategoryUsecase
	reportUC   *mockUsecase.MockReportUsecase
	hppUC      *mockUsecase.MockHppUsecase
	settingsUC *mockUsecase.MockSettingsUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Ledger: &config.LedgerConfig{Timezone: "Asia/Jakarta"}}

	s := &testServer{
		userID:     uuid.New(),
		tokens:     mockService.NewMockTokenService(t),
		authUC:     mockUsecase.NewMockAuthUsecase(t),
		profileUC:  mockUsecase.NewMockProfileUsecase(t),
		txUC:       mockUsecase.NewMockTransactionUsecase(t),
		customerUC: mockUsecase.NewMockCustomerUsecase(t),
		categoryUC: mockUsecase.NewMockCategoryUsecase(t),
		reportUC:   mockUsecase.NewMockReportUsecase(t),
		hppUC:      mockUsecase.NewMockHppUsecase(t),
		settingsUC: mockUsecase.NewMockSettingsUsecase(t),
	}
	s.tokens.EXPECT().ValidateAccessToken(testToken).Return(s.userID, nil).Maybe()
	s.tokens.EXPECT().ValidateAccessToken(mock.MatchedBy(func(tok string) bool { return tok != testToken })).Return(uuid.Nil, service.ErrTokenInvalid).Maybe()

	s.echo = api.NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		AuthHandler:        handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: s.authUC, Logger: logger}),
		ProfileHandler:     handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: s.profileUC}),
		TransactionHandler: handler.NewTransactionHandler(handler.TransactionHandlerParams{TransactionUC: s.txUC, Config: cfg}),
		CustomerHandler:    handler.NewCustomerHandler(handler.CustomerHandlerParams{CustomerUC: s.customerUC}),
		CategoryHandler:    handler.NewCategoryHandler(handler.CategoryHandlerParams{CategoryUC: s.categoryUC}),
		ReportHandler:      handler.NewReportHandler(handler.ReportHandlerParams{ReportUC: s.reportUC, Config: cfg}),
		HppHandler:         handler.NewHppHandler(handler.HppHandlerParams{HppUC: s.hppUC}),
		SettingsHandler:    handler.NewSettingsHandler(handler.SettingsHandlerParams{SettingsUC: s.settingsUC}),
		AuthMiddleware:     middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: s.tokens, Logger: logger}),
	}).RegisterRoutes(s.echo)

	return s
}

// do sends the request with the test access token unless token is empty.
func (s *testServer) do(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func (s *testServer) authed(method, target, body string) *httptest.ResponseRecorder {
	return s.do(method, target, body, testToken)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var data map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))

	return data
}

func decimalOf(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)

	return d
}
