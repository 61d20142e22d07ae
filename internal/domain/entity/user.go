// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner of a ledger. Every other record is scoped to exactly one user.
type User struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the user.
	ExternalAuthID string    // Subject identifier issued by the external identity provider.
	Email          string    // The user's primary contact email.
	Name           string    // The user's display name.
	BusinessName   string    // Optional trading name printed on receipts and exports.
	CreatedAt      time.Time // Timestamp of when this user account was created.
	UpdatedAt      time.Time // Timestamp of the last modification to this user's data.
}

// DisplayBusinessName returns the business name, falling back to the user's name.
func (u *User) DisplayBusinessName() string {
	if u.BusinessName != "" {
		return u.BusinessName
	}

	return u.Name
}
