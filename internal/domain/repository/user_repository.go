// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
// Every method that takes an owner ID treats a record owned by someone else exactly like a missing one.
package repository

import (
	"context"
	"errors"

	"bookkeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByExternalAuthID retrieves a user by the identity provider's subject.
	FindByExternalAuthID(ctx context.Context, externalAuthID string) (*entity.User, error)

	// CreateIfAbsent inserts the user unless one with the same external auth ID
	// already exists. It reports whether a row was created.
	CreateIfAbsent(ctx context.Context, user *entity.User) (bool, error)

	// Update modifies an existing user's profile fields.
	Update(ctx context.Context, user *entity.User) error

	// ListIDs returns the IDs of every user, for batch jobs.
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}
