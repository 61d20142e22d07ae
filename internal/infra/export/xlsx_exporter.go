// Package export renders ledger reports as spreadsheets.
package export

import (
	"context"
	"log/slog"
	"strconv"

	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/finance"
	"bookkeeper/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary      = "Summary"
	sheetTransactions = "Transactions"
	sheetCategories   = "Categories"
	dateLayout        = "2006-01-02"
	amountFormat      = "#,##0.00"
)

type xlsxExporter struct {
	logger *slog.Logger
}

// NewXLSXExporter creates a ReportExporter producing Excel workbooks.
func NewXLSXExporter(logger *slog.Logger) service.ReportExporter {
	return &xlsxExporter{logger: logger}
}

// Export writes a workbook with summary, transaction and category sheets.
// Amount cells are numeric so spreadsheet formulas keep working; the summary
// also carries the exact decimal strings.
func (e *xlsxExporter) Export(ctx context.Context, report *service.LedgerReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.WarnContext(ctx, "Failed to close workbook", slog.Any("error", err))
		}
	}()

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, errors.Wrap(err, "failed to rename summary sheet")
	}

	w := &sheetWriter{f: f, styles: styles}

	w.writeSummary(report)
	w.writeTransactions(report)
	w.writeCategories(report)

	if w.err != nil {
		return nil, w.err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}

	return buf.Bytes(), nil
}

type styles struct {
	header int
	amount int
}

func newStyles(f *excelize.File) (styles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E5E7EB"}, Pattern: 1},
	})
	if err != nil {
		return styles{}, errors.Wrap(err, "failed to create header style")
	}

	format := amountFormat
	amount, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return styles{}, errors.Wrap(err, "failed to create amount style")
	}

	return styles{header: header, amount: amount}, nil
}

// sheetWriter records the first error so the sheet builders stay linear.
type sheetWriter struct {
	f      *excelize.File
	styles styles
	err    error
}

func (w *sheetWriter) set(sheet string, col, row int, value any) {
	if w.err != nil {
		return
	}

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = errors.WithStack(err)

		return
	}

	if err := w.f.SetCellValue(sheet, cell, value); err != nil {
		w.err = errors.Wrapf(err, "failed to set %s!%s", sheet, cell)
	}
}

func (w *sheetWriter) header(sheet string, row int, titles ...string) {
	for i, title := range titles {
		w.set(sheet, i+1, row, title)
	}

	if w.err != nil {
		return
	}

	start, _ := excelize.CoordinatesToCellName(1, row)
	end, _ := excelize.CoordinatesToCellName(len(titles), row)
	if err := w.f.SetCellStyle(sheet, start, end, w.styles.header); err != nil {
		w.err = errors.WithStack(err)
	}
}

func (w *sheetWriter) amountColumn(sheet, col string, firstRow, lastRow int) {
	if w.err != nil || lastRow < firstRow {
		return
	}

	if err := w.f.SetCellStyle(sheet, col+strconv.Itoa(firstRow), col+strconv.Itoa(lastRow), w.styles.amount); err != nil {
		w.err = errors.WithStack(err)
	}
}

func (w *sheetWriter) widths(sheet string, widths map[string]float64) {
	for col, width := range widths {
		if w.err != nil {
			return
		}

		if err := w.f.SetColWidth(sheet, col, col, width); err != nil {
			w.err = errors.WithStack(err)
		}
	}
}

func (w *sheetWriter) writeSummary(r *service.LedgerReport) {
	rows := [][2]any{
		{"Business", r.BusinessName},
		{"Period start", r.Period.Start.Format(dateLayout)},
		{"Period end (exclusive)", r.Period.End.Format(dateLayout)},
		{"Total income", r.Summary.TotalIncome.String()},
		{"Total expense", r.Summary.TotalExpense.String()},
		{"Net profit", r.Summary.NetProfit.String()},
		{"Transactions", r.Summary.TransactionCount},
	}

	w.header(sheetSummary, 1, "Item", "Value")
	for i, row := range rows {
		w.set(sheetSummary, 1, i+2, row[0])
		w.set(sheetSummary, 2, i+2, row[1])
	}

	w.widths(sheetSummary, map[string]float64{"A": 24, "B": 24})
}

func (w *sheetWriter) writeTransactions(r *service.LedgerReport) {
	if w.err != nil {
		return
	}

	if _, err := w.f.NewSheet(sheetTransactions); err != nil {
		w.err = errors.WithStack(err)

		return
	}

	categories := make(map[uuid.UUID]string, len(r.Categories))
	for _, c := range r.Categories {
		categories[c.ID] = c.Name
	}

	customers := make(map[uuid.UUID]string, len(r.Customers))
	for _, c := range r.Customers {
		customers[c.ID] = c.Name
	}

	w.header(sheetTransactions, 1, "Date", "Type", "Category", "Customer", "Description", "Amount")

	for i, tx := range r.Transactions {
		row := i + 2
		w.set(sheetTransactions, 1, row, tx.OccurredAt.Format(dateLayout))
		w.set(sheetTransactions, 2, row, kindLabel(tx.Kind))
		w.set(sheetTransactions, 3, row, lookup(categories, tx.CategoryID))
		w.set(sheetTransactions, 4, row, lookup(customers, tx.CustomerID))
		w.set(sheetTransactions, 5, row, tx.Description)
		w.set(sheetTransactions, 6, row, tx.Amount.Float64())
	}

	w.amountColumn(sheetTransactions, "F", 2, len(r.Transactions)+1)
	w.widths(sheetTransactions, map[string]float64{"A": 12, "B": 10, "C": 18, "D": 18, "E": 36, "F": 16})
}

func (w *sheetWriter) writeCategories(r *service.LedgerReport) {
	if w.err != nil {
		return
	}

	if _, err := w.f.NewSheet(sheetCategories); err != nil {
		w.err = errors.WithStack(err)

		return
	}

	w.header(sheetCategories, 1, "Type", "Category", "Amount", "Percentage", "Count")

	row := 2
	for _, d := range []finance.Distribution{r.IncomeDistribution, r.ExpenseDistribution} {
		for _, b := range d.Buckets {
			w.set(sheetCategories, 1, row, kindLabel(d.Kind))
			w.set(sheetCategories, 2, row, b.Name)
			w.set(sheetCategories, 3, row, b.Value.Float64())
			w.set(sheetCategories, 4, row, b.Percentage.StringFixed(2)+"%")
			w.set(sheetCategories, 5, row, b.Count)
			row++
		}
	}

	w.amountColumn(sheetCategories, "C", 2, row-1)
	w.widths(sheetCategories, map[string]float64{"A": 10, "B": 20, "C": 16, "D": 12, "E": 8})
}

func kindLabel(kind entity.TransactionKind) string {
	if kind == entity.KindIncome {
		return "Income"
	}

	return "Expense"
}

func lookup(names map[uuid.UUID]string, id *uuid.UUID) string {
	if id == nil {
		return ""
	}

	return names[*id]
}
