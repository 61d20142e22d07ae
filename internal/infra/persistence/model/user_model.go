// Package model holds the GORM persistence models. Column types are chosen to
// work on both PostgreSQL and SQLite; IDs are generated by the application.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalAuthID string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_users_external_auth_id"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	Name           string    `gorm:"type:varchar(100)"`
	BusinessName   string    `gorm:"type:varchar(150)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
