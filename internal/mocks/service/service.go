package service

import (
	"context"
	"time"

	"bookkeeper/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockIdentityVerifier is a testify mock of service.IdentityVerifier.
type MockIdentityVerifier struct {
	mock.Mock
}

// NewMockIdentityVerifier creates a mock that asserts its expectations when the test ends.
func NewMockIdentityVerifier(t testingT) *MockIdentityVerifier {
	m := &MockIdentityVerifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockIdentityVerifierExpecter registers expectations with argument matchers.
type MockIdentityVerifierExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockIdentityVerifier) EXPECT() *MockIdentityVerifierExpecter {
	return &MockIdentityVerifierExpecter{mock: &m.Mock}
}

func (m *MockIdentityVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.ExternalIdentity, error) {
	args := m.Called(ctx, idToken)

	return ret[*service.ExternalIdentity](args, 0), args.Error(1)
}

func (e *MockIdentityVerifierExpecter) VerifyIDToken(ctx, idToken any) *mock.Call {
	return e.mock.On("VerifyIDToken", ctx, idToken)
}

func (m *MockIdentityVerifier) Provider() string {
	args := m.Called()

	return args.String(0)
}

func (e *MockIdentityVerifierExpecter) Provider() *mock.Call {
	return e.mock.On("Provider")
}

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock that asserts its expectations when the test ends.
func NewMockTokenService(t testingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTokenServiceExpecter registers expectations with argument matchers.
type MockTokenServiceExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockTokenService) EXPECT() *MockTokenServiceExpecter {
	return &MockTokenServiceExpecter{mock: &m.Mock}
}

func (m *MockTokenService) GenerateAccessToken(userID uuid.UUID) (string, time.Time, error) {
	args := m.Called(userID)

	return args.String(0), ret[time.Time](args, 1), args.Error(2)
}

func (e *MockTokenServiceExpecter) GenerateAccessToken(userID any) *mock.Call {
	return e.mock.On("GenerateAccessToken", userID)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	args := m.Called(tokenString)

	return ret[uuid.UUID](args, 0), args.Error(1)
}

func (e *MockTokenServiceExpecter) ValidateAccessToken(tokenString any) *mock.Call {
	return e.mock.On("ValidateAccessToken", tokenString)
}

// MockEventPublisher is a testify mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a mock that asserts its expectations when the test ends.
func NewMockEventPublisher(t testingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockEventPublisherExpecter registers expectations with argument matchers.
type MockEventPublisherExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockEventPublisher) EXPECT() *MockEventPublisherExpecter {
	return &MockEventPublisherExpecter{mock: &m.Mock}
}

func (m *MockEventPublisher) PublishLedgerEvent(ctx context.Context, event *service.LedgerEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (e *MockEventPublisherExpecter) PublishLedgerEvent(ctx, event any) *mock.Call {
	return e.mock.On("PublishLedgerEvent", ctx, event)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

func (e *MockEventPublisherExpecter) Close() *mock.Call {
	return e.mock.On("Close")
}

// MockQRCodeService is a testify mock of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates a mock that asserts its expectations when the test ends.
func NewMockQRCodeService(t testingT) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockQRCodeServiceExpecter registers expectations with argument matchers.
type MockQRCodeServiceExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockQRCodeService) EXPECT() *MockQRCodeServiceExpecter {
	return &MockQRCodeServiceExpecter{mock: &m.Mock}
}

func (m *MockQRCodeService) GenerateReceiptQR(receipt *service.ReceiptData) ([]byte, error) {
	args := m.Called(receipt)

	return ret[[]byte](args, 0), args.Error(1)
}

func (e *MockQRCodeServiceExpecter) GenerateReceiptQR(receipt any) *mock.Call {
	return e.mock.On("GenerateReceiptQR", receipt)
}

func (m *MockQRCodeService) ParseReceiptQR(qrData string) (*service.ReceiptData, error) {
	args := m.Called(qrData)

	return ret[*service.ReceiptData](args, 0), args.Error(1)
}

func (e *MockQRCodeServiceExpecter) ParseReceiptQR(qrData any) *mock.Call {
	return e.mock.On("ParseReceiptQR", qrData)
}

// MockReportExporter is a testify mock of service.ReportExporter.
type MockReportExporter struct {
	mock.Mock
}

// NewMockReportExporter creates a mock that asserts its expectations when the test ends.
func NewMockReportExporter(t testingT) *MockReportExporter {
	m := &MockReportExporter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockReportExporterExpecter registers expectations with argument matchers.
type MockReportExporterExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockReportExporter) EXPECT() *MockReportExporterExpecter {
	return &MockReportExporterExpecter{mock: &m.Mock}
}

func (m *MockReportExporter) Export(ctx context.Context, report *service.LedgerReport) ([]byte, error) {
	args := m.Called(ctx, report)

	return ret[[]byte](args, 0), args.Error(1)
}

func (e *MockReportExporterExpecter) Export(ctx, report any) *mock.Call {
	return e.mock.On("Export", ctx, report)
}

// MockReportArchive is a testify mock of service.ReportArchive.
type MockReportArchive struct {
	mock.Mock
}

// NewMockReportArchive creates a mock that asserts its expectations when the test ends.
func NewMockReportArchive(t testingT) *MockReportArchive {
	m := &MockReportArchive{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockReportArchiveExpecter registers expectations with argument matchers.
type MockReportArchiveExpecter struct {
	mock *mock.Mock
}

// EXPECT starts an expectation.
func (m *MockReportArchive) EXPECT() *MockReportArchiveExpecter {
	return &MockReportArchiveExpecter{mock: &m.Mock}
}

func (m *MockReportArchive) Enabled() bool {
	args := m.Called()

	return args.Bool(0)
}

func (e *MockReportArchiveExpecter) Enabled() *mock.Call {
	return e.mock.On("Enabled")
}

func (m *MockReportArchive) Put(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)

	return args.Error(0)
}

func (e *MockReportArchiveExpecter) Put(ctx, key, data, contentType any) *mock.Call {
	return e.mock.On("Put", ctx, key, data, contentType)
}
