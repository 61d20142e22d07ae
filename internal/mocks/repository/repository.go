package repository

import (
	"context"

	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock that asserts its expectations when the test ends.
func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockUserRepositoryExpecter registers expectations with argument matchers.
type MockUserRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockUserRepository) EXPECT() *MockUserRepositoryExpecter {
	return &MockUserRepositoryExpecter{mock: &m.Mock}
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)

	return ret[*entity.User](args, 0), args.Error(1)
}

func (e *MockUserRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (m *MockUserRepository) FindByExternalAuthID(ctx context.Context, externalAuthID string) (*entity.User, error) {
	args := m.Called(ctx, externalAuthID)

	return ret[*entity.User](args, 0), args.Error(1)
}

func (e *MockUserRepositoryExpecter) FindByExternalAuthID(ctx, externalAuthID any) *mock.Call {
	return e.mock.On("FindByExternalAuthID", ctx, externalAuthID)
}

func (m *MockUserRepository) CreateIfAbsent(ctx context.Context, user *entity.User) (bool, error) {
	args := m.Called(ctx, user)

	return args.Bool(0), args.Error(1)
}

func (e *MockUserRepositoryExpecter) CreateIfAbsent(ctx, user any) *mock.Call {
	return e.mock.On("CreateIfAbsent", ctx, user)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (e *MockUserRepositoryExpecter) Update(ctx, user any) *mock.Call {
	return e.mock.On("Update", ctx, user)
}

func (m *MockUserRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)

	return ret[[]uuid.UUID](args, 0), args.Error(1)
}

func (e *MockUserRepositoryExpecter) ListIDs(ctx any) *mock.Call {
	return e.mock.On("ListIDs", ctx)
}

// MockCustomerRepository is a testify mock of repository.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

// NewMockCustomerRepository creates a mock that asserts its expectations when the test ends.
func NewMockCustomerRepository(t testingT) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCustomerRepositoryExpecter registers expectations with argument matchers.
type MockCustomerRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockCustomerRepository) EXPECT() *MockCustomerRepositoryExpecter {
	return &MockCustomerRepositoryExpecter{mock: &m.Mock}
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)

	return args.Error(0)
}

func (e *MockCustomerRepositoryExpecter) Create(ctx, customer any) *mock.Call {
	return e.mock.On("Create", ctx, customer)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id, ownerID)

	return ret[*entity.Customer](args, 0), args.Error(1)
}

func (e *MockCustomerRepositoryExpecter) FindByID(ctx, id, ownerID any) *mock.Call {
	return e.mock.On("FindByID", ctx, id, ownerID)
}

func (m *MockCustomerRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Customer, error) {
	args := m.Called(ctx, ownerID)

	return ret[[]*entity.Customer](args, 0), args.Error(1)
}

func (e *MockCustomerRepositoryExpecter) ListByOwner(ctx, ownerID any) *mock.Call {
	return e.mock.On("ListByOwner", ctx, ownerID)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)

	return args.Error(0)
}

func (e *MockCustomerRepositoryExpecter) Update(ctx, customer any) *mock.Call {
	return e.mock.On("Update", ctx, customer)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, ownerID)

	return args.Bool(0), args.Error(1)
}

func (e *MockCustomerRepositoryExpecter) Delete(ctx, id, ownerID any) *mock.Call {
	return e.mock.On("Delete", ctx, id, ownerID)
}

// MockCategoryRepository is a testify mock of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

// NewMockCategoryRepository creates a mock that asserts its expectations when the test ends.
func NewMockCategoryRepository(t testingT) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCategoryRepositoryExpecter registers expectations with argument matchers.
type MockCategoryRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockCategoryRepository) EXPECT() *MockCategoryRepositoryExpecter {
	return &MockCategoryRepositoryExpecter{mock: &m.Mock}
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.TransactionCategory) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (e *MockCategoryRepositoryExpecter) Create(ctx, category any) *mock.Call {
	return e.mock.On("Create", ctx, category)
}

func (m *MockCategoryRepository) CreateBatch(ctx context.Context, categories []*entity.TransactionCategory) error {
	args := m.Called(ctx, categories)

	return args.Error(0)
}

func (e *MockCategoryRepositoryExpecter) CreateBatch(ctx, categories any) *mock.Call {
	return e.mock.On("CreateBatch", ctx, categories)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*entity.TransactionCategory, error) {
	args := m.Called(ctx, id, ownerID)

	return ret[*entity.TransactionCategory](args, 0), args.Error(1)
}

func (e *MockCategoryRepositoryExpecter) FindByID(ctx, id, ownerID any) *mock.Call {
	return e.mock.On("FindByID", ctx, id, ownerID)
}

func (m *MockCategoryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, kind *entity.TransactionKind) ([]*entity.TransactionCategory, error) {
	args := m.Called(ctx, ownerID, kind)

	return ret[[]*entity.TransactionCategory](args, 0), args.Error(1)
}

func (e *MockCategoryRepositoryExpecter) ListByOwner(ctx, ownerID, kind any) *mock.Call {
	return e.mock.On("ListByOwner", ctx, ownerID, kind)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entity.TransactionCategory) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (e *MockCategoryRepositoryExpecter) Update(ctx, category any) *mock.Call {
	return e.mock.On("Update", ctx, category)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, ownerID)

	return args.Bool(0), args.Error(1)
}

func (e *MockCategoryRepositoryExpecter) Delete(ctx, id, ownerID any) *mock.Call {
	return e.mock.On("Delete", ctx, id, ownerID)
}

// MockLedgerRepository is a testify mock of repository.LedgerRepository.
type MockLedgerRepository struct {
	mock.Mock
}

// NewMockLedgerRepository creates a mock that asserts its expectations when the test ends.
func NewMockLedgerRepository(t testingT) *MockLedgerRepository {
	m := &MockLedgerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockLedgerRepositoryExpecter registers expectations with argument matchers.
type MockLedgerRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockLedgerRepository) EXPECT() *MockLedgerRepositoryExpecter {
	return &MockLedgerRepositoryExpecter{mock: &m.Mock}
}

func (m *MockLedgerRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	args := m.Called(ctx, tx)

	return args.Error(0)
}

func (e *MockLedgerRepositoryExpecter) Create(ctx, tx any) *mock.Call {
	return e.mock.On("Create", ctx, tx)
}

func (m *MockLedgerRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*entity.Transaction, error) {
	args := m.Called(ctx, id, ownerID)

	return ret[*entity.Transaction](args, 0), args.Error(1)
}

func (e *MockLedgerRepositoryExpecter) FindByID(ctx, id, ownerID any) *mock.Call {
	return e.mock.On("FindByID", ctx, id, ownerID)
}

func (m *MockLedgerRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	args := m.Called(ctx, ownerID, filter)

	return ret[[]*entity.Transaction](args, 0), args.Error(1)
}

func (e *MockLedgerRepositoryExpecter) ListByOwner(ctx, ownerID, filter any) *mock.Call {
	return e.mock.On("ListByOwner", ctx, ownerID, filter)
}

func (m *MockLedgerRepository) Update(ctx context.Context, tx *entity.Transaction) error {
	args := m.Called(ctx, tx)

	return args.Error(0)
}

func (e *MockLedgerRepositoryExpecter) Update(ctx, tx any) *mock.Call {
	return e.mock.On("Update", ctx, tx)
}

func (m *MockLedgerRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, ownerID)

	return args.Bool(0), args.Error(1)
}

func (e *MockLedgerRepositoryExpecter) Delete(ctx, id, ownerID any) *mock.Call {
	return e.mock.On("Delete", ctx, id, ownerID)
}

func (m *MockLedgerRepository) DetachCustomer(ctx context.Context, ownerID uuid.UUID, customerID uuid.UUID) error {
	args := m.Called(ctx, ownerID, customerID)

	return args.Error(0)
}

func (e *MockLedgerRepositoryExpecter) DetachCustomer(ctx, ownerID, customerID any) *mock.Call {
	return e.mock.On("DetachCustomer", ctx, ownerID, customerID)
}

func (m *MockLedgerRepository) DetachCategory(ctx context.Context, ownerID uuid.UUID, categoryID uuid.UUID) error {
	args := m.Called(ctx, ownerID, categoryID)

	return args.Error(0)
}

func (e *MockLedgerRepositoryExpecter) DetachCategory(ctx, ownerID, categoryID any) *mock.Call {
	return e.mock.On("DetachCategory", ctx, ownerID, categoryID)
}

// MockHppCalculationRepository is a testify mock of repository.HppCalculationRepository.
type MockHppCalculationRepository struct {
	mock.Mock
}

// NewMockHppCalculationRepository creates a mock that asserts its expectations when the test ends.
func NewMockHppCalculationRepository(t testingT) *MockHppCalculationRepository {
	m := &MockHppCalculationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockHppCalculationRepositoryExpecter registers expectations with argument matchers.
type MockHppCalculationRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockHppCalculationRepository) EXPECT() *MockHppCalculationRepositoryExpecter {
	return &MockHppCalculationRepositoryExpecter{mock: &m.Mock}
}

func (m *MockHppCalculationRepository) Create(ctx context.Context, calc *entity.HppCalculation) error {
	args := m.Called(ctx, calc)

	return args.Error(0)
}

func (e *MockHppCalculationRepositoryExpecter) Create(ctx, calc any) *mock.Call {
	return e.mock.On("Create", ctx, calc)
}

func (m *MockHppCalculationRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*entity.HppCalculation, error) {
	args := m.Called(ctx, id, ownerID)

	return ret[*entity.HppCalculation](args, 0), args.Error(1)
}

func (e *MockHppCalculationRepositoryExpecter) FindByID(ctx, id, ownerID any) *mock.Call {
	return e.mock.On("FindByID", ctx, id, ownerID)
}

func (m *MockHppCalculationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.HppCalculation, error) {
	args := m.Called(ctx, ownerID)

	return ret[[]*entity.HppCalculation](args, 0), args.Error(1)
}

func (e *MockHppCalculationRepositoryExpecter) ListByOwner(ctx, ownerID any) *mock.Call {
	return e.mock.On("ListByOwner", ctx, ownerID)
}

func (m *MockHppCalculationRepository) Update(ctx context.Context, calc *entity.HppCalculation) error {
	args := m.Called(ctx, calc)

	return args.Error(0)
}

func (e *MockHppCalculationRepositoryExpecter) Update(ctx, calc any) *mock.Call {
	return e.mock.On("Update", ctx, calc)
}

func (m *MockHppCalculationRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, ownerID)

	return args.Bool(0), args.Error(1)
}

func (e *MockHppCalculationRepositoryExpecter) Delete(ctx, id, ownerID any) *mock.Call {
	return e.mock.On("Delete", ctx, id, ownerID)
}

// MockBusinessSettingsRepository is a testify mock of repository.BusinessSettingsRepository.
type MockBusinessSettingsRepository struct {
	mock.Mock
}

// NewMockBusinessSettingsRepository creates a mock that asserts its expectations when the test ends.
func NewMockBusinessSettingsRepository(t testingT) *MockBusinessSettingsRepository {
	m := &MockBusinessSettingsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockBusinessSettingsRepositoryExpecter registers expectations with argument matchers.
type MockBusinessSettingsRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockBusinessSettingsRepository) EXPECT() *MockBusinessSettingsRepositoryExpecter {
	return &MockBusinessSettingsRepositoryExpecter{mock: &m.Mock}
}

func (m *MockBusinessSettingsRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessSettings, error) {
	args := m.Called(ctx, ownerID)

	return ret[*entity.BusinessSettings](args, 0), args.Error(1)
}

func (e *MockBusinessSettingsRepositoryExpecter) FindByOwner(ctx, ownerID any) *mock.Call {
	return e.mock.On("FindByOwner", ctx, ownerID)
}

func (m *MockBusinessSettingsRepository) Upsert(ctx context.Context, settings *entity.BusinessSettings) error {
	args := m.Called(ctx, settings)

	return args.Error(0)
}

func (e *MockBusinessSettingsRepositoryExpecter) Upsert(ctx, settings any) *mock.Call {
	return e.mock.On("Upsert", ctx, settings)
}

// MockTransactionManager is a testify mock of repository.TransactionManager.
// Returning a repository.RepositoryFactory from the expectation runs fn against it;
// returning an error skips fn.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock that asserts its expectations when the test ends.
func NewMockTransactionManager(t testingT) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTransactionManagerExpecter registers expectations with argument matchers.
type MockTransactionManagerExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockTransactionManager) EXPECT() *MockTransactionManagerExpecter {
	return &MockTransactionManagerExpecter{mock: &m.Mock}
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if factory, ok := args.Get(0).(repository.RepositoryFactory); ok {
		return fn(factory)
	}

	return args.Error(0)
}

func (e *MockTransactionManagerExpecter) Execute(ctx, fn any) *mock.Call {
	return e.mock.On("Execute", ctx, fn)
}

// MockRepositoryFactory is a testify mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock that asserts its expectations when the test ends.
func NewMockRepositoryFactory(t testingT) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockRepositoryFactoryExpecter registers expectations with argument matchers.
type MockRepositoryFactoryExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockRepositoryFactory) EXPECT() *MockRepositoryFactoryExpecter {
	return &MockRepositoryFactoryExpecter{mock: &m.Mock}
}

func (m *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	args := m.Called()

	return ret[repository.UserRepository](args, 0)
}

func (e *MockRepositoryFactoryExpecter) NewUserRepository() *mock.Call {
	return e.mock.On("NewUserRepository")
}

func (m *MockRepositoryFactory) NewCustomerRepository() repository.CustomerRepository {
	args := m.Called()

	return ret[repository.CustomerRepository](args, 0)
}

func (e *MockRepositoryFactoryExpecter) NewCustomerRepository() *mock.Call {
	return e.mock.On("NewCustomerRepository")
}

func (m *MockRepositoryFactory) NewCategoryRepository() repository.CategoryRepository {
	args := m.Called()

	return ret[repository.CategoryRepository](args, 0)
}

func (e *MockRepositoryFactoryExpecter) NewCategoryRepository() *mock.Call {
	return e.mock.On("NewCategoryRepository")
}

func (m *MockRepositoryFactory) NewLedgerRepository() repository.LedgerRepository {
	args := m.Called()

	return ret[repository.LedgerRepository](args, 0)
}

func (e *MockRepositoryFactoryExpecter) NewLedgerRepository() *mock.Call {
	return e.mock.On("NewLedgerRepository")
}

func (m *MockRepositoryFactory) NewHppCalculationRepository() repository.HppCalculationRepository {
	args := m.Called()

	return ret[repository.HppCalculationRepository](args, 0)
}

func (e *MockRepositoryFactoryExpecter) NewHppCalculationRepository() *mock.Call {
	return e.mock.On("NewHppCalculationRepository")
}

func (m *MockRepositoryFactory) NewBusinessSettingsRepository() repository.BusinessSettingsRepository {
	args := m.Called()

	return ret[repository.BusinessSettingsRepository](args, 0)
}

func (e *MockRepositoryFactoryExpecter) NewBusinessSettingsRepository() *mock.Call {
	return e.mock.On("NewBusinessSettingsRepository")
}
