package service

import (
	"context"

	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/finance"
)

// ReportContentTypeXLSX is the MIME type of exported workbooks.
const ReportContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LedgerReport is everything an export needs for one period.
type LedgerReport struct {
	BusinessName        string
	Period              finance.Period
	Summary             finance.Summary
	IncomeDistribution  finance.Distribution
	ExpenseDistribution finance.Distribution
	Transactions        []*entity.Transaction
	Categories          []*entity.TransactionCategory
	Customers           []*entity.Customer
}

// ReportExporter renders a ledger report into a downloadable document.
type ReportExporter interface {
	Export(ctx context.Context, report *LedgerReport) ([]byte, error)
}

// ReportArchive stores rendered reports.
type ReportArchive interface {
	// Enabled reports whether a storage backend is configured.
	Enabled() bool
	// Put writes data under key, replacing any existing object.
	Put(ctx context.Context, key string, data []byte, contentType string) error
}
