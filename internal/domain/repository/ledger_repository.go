package repository

import (
	"context"
	"errors"
	"time"

	"bookkeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTransactionNotFound is returned when a ledger transaction is not found for the owner.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionFilter narrows a ledger listing. Zero values mean "no constraint".
type TransactionFilter struct {
	Start time.Time // Inclusive lower bound on OccurredAt.
	End   time.Time // Exclusive upper bound on OccurredAt.
	Kind  entity.TransactionKind
	Limit int
}

// LedgerRepository persists income and expense transactions.
type LedgerRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Transaction, error)
	// ListByOwner returns transactions ordered by OccurredAt then CreatedAt, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter TransactionFilter) ([]*entity.Transaction, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
	// DetachCustomer clears the customer reference on all of the owner's transactions.
	DetachCustomer(ctx context.Context, ownerID, customerID uuid.UUID) error
	// DetachCategory clears the category reference on all of the owner's transactions.
	DetachCategory(ctx context.Context, ownerID, categoryID uuid.UUID) error
}
