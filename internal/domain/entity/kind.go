package entity

// TransactionKind separates money coming in from money going out.
type TransactionKind string

const (
	// KindIncome marks revenue.
	KindIncome TransactionKind = "income"
	// KindExpense marks spending.
	KindExpense TransactionKind = "expense"
)

// String returns the string representation of the TransactionKind.
func (k TransactionKind) String() string {
	return string(k)
}

// IsValid checks if the TransactionKind is a valid value.
func (k TransactionKind) IsValid() bool {
	switch k {
	case KindIncome, KindExpense:
		return true
	default:
		return false
	}
}
