package finance

import (
	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/money"
)

// Summary is the aggregate of a set of transactions.
type Summary struct {
	TotalIncome      money.Amount `json:"totalIncome"`
	TotalExpense     money.Amount `json:"totalExpense"`
	NetProfit        money.Amount `json:"netProfit"`
	TransactionCount int          `json:"transactionCount"`
	IncomeCount      int          `json:"incomeCount"`
	ExpenseCount     int          `json:"expenseCount"`
}

// Summarize totals income and expense. The caller has already restricted txs to
// the period of interest.
func Summarize(txs []*entity.Transaction) Summary {
	var s Summary

	for _, tx := range txs {
		switch tx.Kind {
		case entity.KindIncome:
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
			s.IncomeCount++
		case entity.KindExpense:
			s.TotalExpense = s.TotalExpense.Add(tx.Amount)
			s.ExpenseCount++
		default:
			continue
		}

		s.TransactionCount++
	}

	s.NetProfit = s.TotalIncome.Sub(s.TotalExpense)

	return s
}

// SummarizePeriod is Summarize restricted to transactions that occurred within p.
func SummarizePeriod(txs []*entity.Transaction, p Period) Summary {
	return Summarize(filterPeriod(txs, p))
}

func filterPeriod(txs []*entity.Transaction, p Period) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(txs))
	for _, tx := range txs {
		if p.Contains(tx.OccurredAt) {
			out = append(out, tx)
		}
	}

	return out
}
