package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionCategory is a user-defined label for grouping transactions of one kind.
type TransactionCategory struct {
	ID        uuid.UUID
	UserID    uuid.UUID       // Owner of the category.
	Name      string          // Display name, unique per owner and kind.
	Kind      TransactionKind // Only transactions of the same kind may reference this category.
	Color     string          // Hex color such as "#10B981".
	CreatedAt time.Time
	UpdatedAt time.Time
}
