package service

import (
	"context"
	"errors"
)

// ErrIdentityTokenInvalid is returned when an identity token fails verification.
var ErrIdentityTokenInvalid = errors.New("identity token invalid")

// ExternalIdentity is the identity asserted by an external provider.
type ExternalIdentity struct {
	Subject       string // Provider-specific user ID (the token's 'sub' claim)
	Email         string
	Name          string
	EmailVerified bool
	Provider      string // e.g. "firebase"
}

// IdentityVerifier verifies ID tokens issued by an external identity provider.
type IdentityVerifier interface {
	// VerifyIDToken checks the token signature and audience and returns the asserted identity.
	VerifyIDToken(ctx context.Context, idToken string) (*ExternalIdentity, error)

	// Provider names the identity provider.
	Provider() string
}
