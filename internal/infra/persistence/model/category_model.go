package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionCategoryModel mirrors the 'transaction_categories' table.
// (user_id, kind, name) is unique so seeding and manual creation cannot collide.
type TransactionCategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_owner_kind_name,priority:1"`
	Kind      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_categories_owner_kind_name,priority:2"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_owner_kind_name,priority:3"`
	Color     string    `gorm:"type:varchar(7);not null;default:'#059669'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionCategoryModel) TableName() string {
	return "transaction_categories"
}
