package usecase

import (
	"context"
	"time"

	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/finance"
	"bookkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a testify mock of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock that asserts its expectations when the test ends.
func NewMockAuthUsecase(t testingT) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockAuthUsecaseExpecter registers expectations with argument matchers.
type MockAuthUsecaseExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockAuthUsecase) EXPECT() *MockAuthUsecaseExpecter {
	return &MockAuthUsecaseExpecter{mock: &m.Mock}
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)

	return ret[*usecase.AuthOutput](args, 0), args.Error(1)
}

func (e *MockAuthUsecaseExpecter) Register(ctx, input any) *mock.Call {
	return e.mock.On("Register", ctx, input)
}

// MockProfileUsecase is a testify mock of usecase.ProfileUsecase.
type MockProfileUsecase struct {
	mock.Mock
}

// NewMockProfileUsecase creates a mock that asserts its expectations when the test ends.
func NewMockProfileUsecase(t testingT) *MockProfileUsecase {
	m := &MockProfileUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockProfileUsecaseExpecter registers expectations with argument matchers.
type MockProfileUsecaseExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockProfileUsecase) EXPECT() *MockProfileUsecaseExpecter {
	return &MockProfileUsecaseExpecter{mock: &m.Mock}
}

func (m *MockProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, userID)

	return ret[*entity.User](args, 0), args.Error(1)
}

func (e *MockProfileUsecaseExpecter) GetProfile(ctx, userID any) *mock.Call {
	return e.mock.On("GetProfile", ctx, userID)
}

func (m *MockProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	args := m.Called(ctx, userID, input)

	return ret[*entity.User](args, 0), args.Error(1)
}

func (e *MockProfileUsecaseExpecter) UpdateProfile(ctx, userID, input any) *mock.Call {
	return e.mock.On("UpdateProfile", ctx, userID, input)
}

// MockCustomerUsecase is a testify mock of usecase.CustomerUsecase.
type MockCustomerUsecase struct {
	mock.Mock
}

// NewMockCustomerUsecase creates a mock that asserts its expectations when the test ends.
func NewMockCustomerUsecase(t testingT) *MockCustomerUsecase {
	m := &MockCustomerUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCustomerUsecaseExpecter registers expectations with argument matchers.
type MockCustomerUsecaseExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockCustomerUsecase) EXPECT() *MockCustomerUsecaseExpecter {
	return &MockCustomerUsecaseExpecter{mock: &m.Mock}
}

func (m *MockCustomerUsecase) CreateCustomer(ctx context.Context, userID uuid.UUID, input *usecase.CustomerInput) (*entity.Customer, error) {
	args := m.Called(ctx, userID, input)

	return ret[*entity.Customer](args, 0), args.Error(1)
}

func (e *MockCustomerUsecaseExpecter) CreateCustomer(ctx, userID, input any) *mock.Call {
	return e.mock.On("CreateCustomer", ctx, userID, input)
}

func (m *MockCustomerUsecase) GetCustomer(ctx context.Context, userID uuid.UUID, customerID uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, userID, customerID)

	return ret[*entity.Customer](args, 0), args.Error(1)
}

func (e *MockCustomerUsecaseExpecter) GetCustomer(ctx, userID, customerID any) *mock.Call {
	return e.mock.On("GetCustomer", ctx, userID, customerID)
}

func (m *MockCustomerUsecase) ListCustomers(ctx context.Context, userID uuid.UUID) ([]*entity.Customer, error) {
	args := m.Called(ctx, userID)

	return ret[[]*entity.Customer](args, 0), args.Error(1)
}

func (e *MockCustomerUsecaseExpecter) ListCustomers(ctx, userID any) *mock.Call {
	return e.mock.On("ListCustomers", ctx, userID)
}

func (m *MockCustomerUsecase) UpdateCustomer(ctx context.Context, userID uuid.UUID, customerID uuid.UUID, patch *usecase.CustomerPatch) (*entity.Customer, error) {
	args := m.Called(ctx, userID, customerID, patch)

	return ret[*entity.Customer](args, 0), args.Error(1)
}

func (e *MockCustomerUsecaseExpecter) UpdateCustomer(ctx, userID, customerID, patch any) *mock.Call {
	return e.mock.On("UpdateCustomer", ctx, userID, customerID, patch)
}

func (m *MockCustomerUsecase) DeleteCustomer(ctx context.Context, userID uuid.UUID, customerID uuid.UUID) error {
	args := m.Called(ctx, userID, customerID)

	return args.Error(0)
}

func (e *MockCustomerUsecaseExpecter) DeleteCustomer(ctx, userID, customerID any) *mock.Call {
	return e.mock.On("DeleteCustomer", ctx, userID, customerID)
}

// MockCategoryUsecase is a testify mock of usecase.CategoryUsecase.
type MockCategoryUsecase struct {
	mock.Mock
}

// NewMockCategoryUsecase creates a mock that asserts its expectations when the test ends.
func NewMockCategoryUsecase(t testingT) *MockCategoryUsecase {
	m := &MockCategoryUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCategoryUsecaseExpecter registers expectations with argument matchers.
type MockCategoryUsecaseExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockCategoryUsecase) EXPECT() *MockCategoryUsecaseExpecter {
	return &MockCategoryUsecaseExpecter{mock: &m.Mock}
}

func (m *MockCategoryUsecase) CreateCategory(ctx context.Context, userID uuid.UUID, input *usecase.CreateCategoryInput) (*entity.TransactionCategory, error) {
	args := m.Called(ctx, userID, input)

	return ret[*entity.TransactionCategory](args, 0), args.Error(1)
}

func (e *MockCategoryUsecaseExpecter) CreateCategory(ctx, userID, input any) *mock.Call {
	return e.mock.On("CreateCategory", ctx, userID, input)
}

func (m *MockCategoryUsecase) ListCategories(ctx context.Context, userID uuid.UUID, kind *entity.TransactionKind) ([]*entity.TransactionCategory, error) {
	args := m.Called(ctx, userID, kind)

	return ret[[]*entity.TransactionCategory](args, 0), args.Error(1)
}

func (e *MockCategoryUsecaseExpecter) ListCategories(ctx, userID, kind any) *mock.Call {
	return e.mock.On("ListCategories", ctx, userID, kind)
}

func (m *MockCategoryUsecase) UpdateCategory(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.TransactionCategory, error) {
	args := m.Called(ctx, userID, categoryID, input)

	return ret[*entity.TransactionCategory](args, 0), args.Error(1)
}

func (e *MockCategoryUsecaseExpecter) UpdateCategory(ctx, userID, categoryID, input any) *mock.Call {
	return e.mock.On("UpdateCategory", ctx, userID, categoryID, input)
}

func (m *MockCategoryUsecase) DeleteCategory(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID) error {
	args := m.Called(ctx, userID, categoryID)

	return args.Error(0)
}

func (e *MockCategoryUsecaseExpecter) DeleteCategory(ctx, userID, categoryID any) *mock.Call {
	return e.mock.On("DeleteCategory", ctx, userID, categoryID)
}

// MockTransactionUsecase is a testify mock of usecase.TransactionUsecase.
type MockTransactionUsecase struct {
	mock.Mock
}

// NewMockTransactionUsecase creates a mock that asserts its expectations when the test ends.
func NewMockTransactionUsecase(t testingT) *MockTransactionUsecase {
	m := &MockTransactionUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTransactionUsecaseExpecter registers expectations with argument matchers.
type MockTransactionUsecaseExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockTransactionUsecase) EXPECT() *MockTransactionUsecaseExpecter {
	return &MockTransactionUsecaseExpecter{mock: &m.Mock}
}

func (m *MockTransactionUsecase) CreateTransaction(ctx context.Context, userID uuid.UUID, input *usecase.TransactionInput) (*entity.Transaction, error) {
	args := m.Called(ctx, userID, input)

	return ret[*entity.Transaction](args, 0), args.Error(1)
}

func (e *MockTransactionUsecaseExpecter) CreateTransaction(ctx, userID, input any) *mock.Call {
	return e.mock.On("CreateTransaction", ctx, userID, input)
}

func (m *MockTransactionUsecase) GetTransaction(ctx context.Context, userID uuid.UUID, transactionID uuid.UUID) (*entity.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)

	return ret[*entity.Transaction](args, 0), args.Error(1)
}

func (e *MockTransactionUsecaseExpecter) GetTransaction(ctx, userID, transactionID any) *mock.Call {
	return e.mock.On("GetTransaction", ctx, userID, transactionID)
}

func (m *MockTransactionUsecase) ListTransactions(ctx context.Context, userID uuid.UUID, input *usecase.ListTransactionsInput) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID, input)

	return ret[[]*entity.Transaction](args, 0), args.Error(1)
}

func (e *MockTransactionUsecaseExpecter) ListTransactions(ctx, userID, input any) *mock.Call {
	return e.mock.On("ListTransactions", ctx, userID, input)
}

func (m *MockTransactionUsecase) UpdateTransaction(ctx context.Context, userID uuid.UUID, transactionID uuid.UUID, patch *usecase.TransactionPatch) (*entity.Transaction, error) {
	args := m.Called(ctx, userID, transactionID, patch)

	return ret[*entity.Transaction](args, 0), args.Error(1)
}

func (e *MockTransactionUsecaseExpecter) UpdateTransaction(ctx, userID, transactionID, patch any) *mock.Call {
	return e.mock.On("UpdateTransaction", ctx, userID, transactionID, patch)
}

func (m *MockTransactionUsecase) DeleteTransaction(ctx context.Context, userID uuid.UUID, transactionID uuid.UUID) error {
	args := m.Called(ctx, userID, transactionID)

	return args.Error(0)
}

func (e *MockTransactionUsecaseExpecter) DeleteTransaction(ctx, userID, transactionID any) *mock.Call {
	return e.mock.On("DeleteTransaction", ctx, userID, transactionID)
}

func (m *MockTransactionUsecase) ReceiptQR(ctx context.Context, userID uuid.UUID, transactionID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, userID, transactionID)

	return ret[[]byte](args, 0), args.Error(1)
}

func (e *MockTransactionUsecaseExpecter) ReceiptQR(ctx, userID, transactionID any) *mock.Call {
	return e.mock.On("ReceiptQR", ctx, userID, transactionID)
}

// MockHppUsecase is a testify mock of usecase.HppUsecase.
type MockHppUsecase struct {
	mock.Mock
}

// NewMockHppUsecase creates a mock that asserts its expectations when the test ends.
func NewMockHppUsecase(t testingT) *MockHppUsecase {
	m := &MockHppUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockHppUsecaseExpecter registers expectations with argument matchers.
type MockHppUsecaseExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockHppUsecase) EXPECT() *MockHppUsecaseExpecter {
	return &MockHppUsecaseExpecter{mock: &m.Mock}
}

func (m *MockHppUsecase) PreviewHpp(ctx context.Context, input *usecase.HppInput) (*usecase.HppOutput, error) {
	args := m.Called(ctx, input)

	return ret[*usecase.HppOutput](args, 0), args.Error(1)
}

func (e *MockHppUsecaseExpecter) PreviewHpp(ctx, input any) *mock.Call {
	return e.mock.On("PreviewHpp", ctx, input)
}

func (m *MockHppUsecase) CreateHpp(ctx context.Context, userID uuid.UUID, input *usecase.HppInput) (*usecase.HppOutput, error) {
	args := m.Called(ctx, userID, input)

	return ret[*usecase.HppOutput](args, 0), args.Error(1)
}

func (e *MockHppUsecaseExpecter) CreateHpp(ctx, userID, input any) *mock.Call {
	return e.mock.On("CreateHpp", ctx, userID, input)
}

func (m *MockHppUsecase) ListHpp(ctx context.Context, userID uuid.UUID) ([]*entity.HppCalculation, error) {
	args := m.Called(ctx, userID)

	return ret[[]*entity.HppCalculation](args, 0), args.Error(1)
}

func (e *MockHppUsecaseExpecter) ListHpp(ctx, userID any) *mock.Call {
	return e.mock.On("ListHpp", ctx, userID)
}

func (m *MockHppUsecase) UpdateHpp(ctx context.Context, userID uuid.UUID, calculationID uuid.UUID, input *usecase.HppInput) (*usecase.HppOutput, error) {
	args := m.Called(ctx, userID, calculationID, input)

	return ret[*usecase.HppOutput](args, 0), args.Error(1)
}

func (e *MockHppUsecaseExpecter) UpdateHpp(ctx, userID, calculationID, input any) *mock.Call {
	return e.mock.On("UpdateHpp", ctx, userID, calculationID, input)
}

func (m *MockHppUsecase) DeleteHpp(ctx context.Context, userID uuid.UUID, calculationID uuid.UUID) error {
	args := m.Called(ctx, userID, calculationID)

	return args.Error(0)
}

func (e *MockHppUsecaseExpecter) DeleteHpp(ctx, userID, calculationID any) *mock.Call {
	return e.mock.On("DeleteHpp", ctx, userID, calculationID)
}

// MockSettingsUsecase is a testify mock of usecase.SettingsUsecase.
type MockSettingsUsecase struct {
	mock.Mock
}

// NewMockSettingsUsecase creates a mock that asserts its expectations when the test ends.
func NewMockSettingsUsecase(t testingT) *MockSettingsUsecase {
	m := &MockSettingsUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockSettingsUsecaseExpecter registers expectations with argument matchers.
type MockSettingsUsecaseExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockSettingsUsecase) EXPECT() *MockSettingsUsecaseExpecter {
	return &MockSettingsUsecaseExpecter{mock: &m.Mock}
}

func (m *MockSettingsUsecase) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.BusinessSettings, error) {
	args := m.Called(ctx, userID)

	return ret[*entity.BusinessSettings](args, 0), args.Error(1)
}

func (e *MockSettingsUsecaseExpecter) GetSettings(ctx, userID any) *mock.Call {
	return e.mock.On("GetSettings", ctx, userID)
}

func (m *MockSettingsUsecase) UpsertSettings(ctx context.Context, userID uuid.UUID, input *usecase.SettingsInput) (*entity.BusinessSettings, error) {
	args := m.Called(ctx, userID, input)

	return ret[*entity.BusinessSettings](args, 0), args.Error(1)
}

func (e *MockSettingsUsecaseExpecter) UpsertSettings(ctx, userID, input any) *mock.Call {
	return e.mock.On("UpsertSettings", ctx, userID, input)
}

// MockReportUsecase is a testify mock of usecase.ReportUsecase.
type MockReportUsecase struct {
	mock.Mock
}

// NewMockReportUsecase creates a mock that asserts its expectations when the test ends.
func NewMockReportUsecase(t testingT) *MockReportUsecase {
	m := &MockReportUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockReportUsecaseExpecter registers expectations with argument matchers.
type MockReportUsecaseExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockReportUsecase) EXPECT() *MockReportUsecaseExpecter {
	return &MockReportUsecaseExpecter{mock: &m.Mock}
}

func (m *MockReportUsecase) Summary(ctx context.Context, userID uuid.UUID, input *usecase.PeriodInput) (*usecase.SummaryReport, error) {
	args := m.Called(ctx, userID, input)

	return ret[*usecase.SummaryReport](args, 0), args.Error(1)
}

func (e *MockReportUsecaseExpecter) Summary(ctx, userID, input any) *mock.Call {
	return e.mock.On("Summary", ctx, userID, input)
}

func (m *MockReportUsecase) CategoryDistribution(ctx context.Context, userID uuid.UUID, input *usecase.DistributionInput) (*finance.Distribution, error) {
	args := m.Called(ctx, userID, input)

	return ret[*finance.Distribution](args, 0), args.Error(1)
}

func (e *MockReportUsecaseExpecter) CategoryDistribution(ctx, userID, input any) *mock.Call {
	return e.mock.On("CategoryDistribution", ctx, userID, input)
}

func (m *MockReportUsecase) Trend(ctx context.Context, userID uuid.UUID, input *usecase.TrendInput) (*usecase.TrendReport, error) {
	args := m.Called(ctx, userID, input)

	return ret[*usecase.TrendReport](args, 0), args.Error(1)
}

func (e *MockReportUsecaseExpecter) Trend(ctx, userID, input any) *mock.Call {
	return e.mock.On("Trend", ctx, userID, input)
}

func (m *MockReportUsecase) BreakEven(ctx context.Context, userID uuid.UUID, input *usecase.BreakEvenInput) (*usecase.BreakEvenReport, error) {
	args := m.Called(ctx, userID, input)

	return ret[*usecase.BreakEvenReport](args, 0), args.Error(1)
}

func (e *MockReportUsecaseExpecter) BreakEven(ctx, userID, input any) *mock.Call {
	return e.mock.On("BreakEven", ctx, userID, input)
}

func (m *MockReportUsecase) Export(ctx context.Context, userID uuid.UUID, input *usecase.PeriodInput) (*usecase.ExportOutput, error) {
	args := m.Called(ctx, userID, input)

	return ret[*usecase.ExportOutput](args, 0), args.Error(1)
}

func (e *MockReportUsecaseExpecter) Export(ctx, userID, input any) *mock.Call {
	return e.mock.On("Export", ctx, userID, input)
}

func (m *MockReportUsecase) ArchiveMonth(ctx context.Context, userID uuid.UUID, month time.Time) (string, error) {
	args := m.Called(ctx, userID, month)

	return args.String(0), args.Error(1)
}

func (e *MockReportUsecaseExpecter) ArchiveMonth(ctx, userID, month any) *mock.Call {
	return e.mock.On("ArchiveMonth", ctx, userID, month)
}
