package finance

import (
	"time"

	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/money"

	"github.com/google/uuid"
)

var testOwner = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTx(kind entity.TransactionKind, amount string, at time.Time, category *uuid.UUID) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		UserID:      testOwner,
		CategoryID:  category,
		Kind:        kind,
		Amount:      money.MustParse(amount),
		Description: "test",
		OccurredAt:  at,
	}
}

func income(amount string, at time.Time) *entity.Transaction {
	return newTx(entity.KindIncome, amount, at, nil)
}

func expense(amount string, at time.Time) *entity.Transaction {
	return newTx(entity.KindExpense, amount, at, nil)
}
