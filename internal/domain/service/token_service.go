package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrTokenInvalid is returned for malformed, expired or wrongly signed access tokens.
var ErrTokenInvalid = errors.New("access token invalid")

// TokenService issues and validates the service's own access tokens.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the user.
	GenerateAccessToken(userID uuid.UUID) (token string, expiresAt time.Time, err error)

	// ValidateAccessToken verifies the token and returns the user it was issued to.
	ValidateAccessToken(tokenString string) (uuid.UUID, error)
}
