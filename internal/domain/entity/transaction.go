package entity

import (
	"time"

	"bookkeeper/internal/domain/money"

	"github.com/google/uuid"
)

// Transaction is a single income or expense entry in a user's ledger.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID       // Owner of the ledger entry.
	CustomerID  *uuid.UUID      // Optional counterparty, nil when not linked.
	CategoryID  *uuid.UUID      // Optional category, nil means uncategorized.
	Kind        TransactionKind // Income or expense.
	Amount      money.Amount    // Always strictly positive; Kind carries the sign.
	Description string
	OccurredAt  time.Time // Business date of the transaction, not the insert time.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsIncome reports whether the transaction is revenue.
func (t *Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// IsExpense reports whether the transaction is spending.
func (t *Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}
