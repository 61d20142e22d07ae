package model

import (
	"time"

	"bookkeeper/internal/domain/money"

	"github.com/google/uuid"
)

// TransactionModel mirrors the 'transactions' table.
type TransactionModel struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID    `gorm:"type:uuid;not null;index:idx_transactions_owner_occurred,priority:1"`
	CustomerID  *uuid.UUID   `gorm:"type:uuid;index"`
	CategoryID  *uuid.UUID   `gorm:"type:uuid;index"`
	Kind        string       `gorm:"type:varchar(10);not null"`
	Amount      money.Amount `gorm:"type:numeric(15,2);not null"`
	Description string       `gorm:"type:text;not null"`
	OccurredAt  time.Time    `gorm:"not null;index:idx_transactions_owner_occurred,priority:2"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
