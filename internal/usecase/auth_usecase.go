// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"bookkeeper/internal/domain/entity"
)

// AuthUsecase signs users in through the external identity provider.
type AuthUsecase interface {
	// Register gets or creates the user behind the identity and issues an access token.
	// Default categories are seeded only when the user is created.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
}

// RegisterInput carries either a provider ID token or, when no provider is
// configured and unverified registration is allowed, the raw identity.
type RegisterInput struct {
	IDToken        string `json:"idToken"`
	ExternalAuthID string `json:"externalAuthId"`
	Email          string `json:"email" validate:"omitempty,email"`
	Name           string `json:"name" validate:"omitempty,max=100"`
}

// AuthOutput is returned after a successful registration or sign-in.
type AuthOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	Created     bool         `json:"created"`
}
