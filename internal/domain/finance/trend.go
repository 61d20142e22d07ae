package finance

import (
	"time"

	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/money"
)

const (
	// DefaultTrendMonths is the window used when the caller does not ask for one.
	DefaultTrendMonths = 6
	// MaxTrendMonths bounds the trend window.
	MaxTrendMonths = 24
)

// MonthlyPoint is one calendar month of a trend.
type MonthlyPoint struct {
	Month   string       `json:"month"` // YYYY-MM
	Start   time.Time    `json:"start"`
	Income  money.Amount `json:"income"`
	Expense money.Amount `json:"expense"`
	Net     money.Amount `json:"net"`
}

// TrendWindow returns the period covering the given number of calendar months
// ending with the month that contains until.
func TrendWindow(until time.Time, months int) (Period, error) {
	if months < 1 || months > MaxTrendMonths {
		return Period{}, invalid("months", "must be between 1 and 24")
	}

	last := MonthOf(until)

	return Period{Start: last.Start.AddDate(0, -(months - 1), 0), End: last.End}, nil
}

// MonthlyTrend buckets transactions inside window into calendar months, oldest first.
// Months without activity are present with zero values.
func MonthlyTrend(txs []*entity.Transaction, window Period) []MonthlyPoint {
	points := make([]MonthlyPoint, 0)
	index := make(map[string]int)
	loc := window.Start.Location()

	for start := window.Start; start.Before(window.End); start = start.AddDate(0, 1, 0) {
		key := start.Format("2006-01")
		index[key] = len(points)
		points = append(points, MonthlyPoint{Month: key, Start: start})
	}

	for _, tx := range txs {
		if !window.Contains(tx.OccurredAt) {
			continue
		}

		i, ok := index[tx.OccurredAt.In(loc).Format("2006-01")]
		if !ok {
			continue
		}

		switch tx.Kind {
		case entity.KindIncome:
			points[i].Income = points[i].Income.Add(tx.Amount)
		case entity.KindExpense:
			points[i].Expense = points[i].Expense.Add(tx.Amount)
		}
	}

	for i := range points {
		points[i].Net = points[i].Income.Sub(points[i].Expense)
	}

	return points
}
