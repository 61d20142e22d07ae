package usecase

import (
	"context"
	"time"

	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/money"

	"github.com/google/uuid"
)

// TransactionUsecase records and edits ledger entries.
type TransactionUsecase interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, input *TransactionInput) (*entity.Transaction, error)
	GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*entity.Transaction, error)
	// ListTransactions returns the owner's transactions, most recent first.
	ListTransactions(ctx context.Context, userID uuid.UUID, input *ListTransactionsInput) ([]*entity.Transaction, error)
	// UpdateTransaction applies only the fields present in the patch.
	UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, patch *TransactionPatch) (*entity.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error
	// ReceiptQR renders a PNG QR code describing the transaction.
	ReceiptQR(ctx context.Context, userID, transactionID uuid.UUID) ([]byte, error)
}

// TransactionInput is the full state of a new transaction.
type TransactionInput struct {
	Kind        entity.TransactionKind `json:"kind" validate:"required,oneof=income expense"`
	Amount      money.Amount           `json:"amount"`
	Description string                 `json:"description" validate:"required,max=500"`
	OccurredAt  time.Time              `json:"occurredAt"`
	CustomerID  *uuid.UUID             `json:"customerId,omitempty"`
	CategoryID  *uuid.UUID             `json:"categoryId,omitempty"`
}

// TransactionPatch changes selected fields of a stored transaction. Nil fields are
// left untouched; categoryId and customerId may be sent as null to detach them.
type TransactionPatch struct {
	Kind        *entity.TransactionKind `json:"kind" validate:"omitempty,oneof=income expense"`
	Amount      *money.Amount           `json:"amount"`
	Description *string                 `json:"description" validate:"omitempty,max=500"`
	OccurredAt  *time.Time              `json:"occurredAt"`
	CustomerID  Nullable[uuid.UUID]     `json:"customerId"`
	CategoryID  Nullable[uuid.UUID]     `json:"categoryId"`
}

// ListTransactionsInput narrows a listing. A zero Start or End leaves that side open.
type ListTransactionsInput struct {
	Start time.Time
	End   time.Time
	Kind  entity.TransactionKind
	Limit int
}
