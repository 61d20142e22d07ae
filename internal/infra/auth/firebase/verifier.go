// Package firebase verifies Firebase Authentication ID tokens.
package firebase

import (
	"context"
	"log/slog"

	"bookkeeper/config"
	"bookkeeper/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const providerName = "firebase"

// tokenVerifier is the subset of the Firebase auth client used here.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type identityVerifier struct {
	client tokenVerifier
	logger *slog.Logger
}

// NewIdentityVerifier creates a verifier backed by the Firebase Admin SDK.
// It returns nil when Firebase is not configured.
func NewIdentityVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	fbCfg := cfg.Firebase
	if fbCfg == nil || (fbCfg.ProjectID == "" && fbCfg.CredentialsPath == "") {
		logger.Warn("Firebase not configured, identity tokens cannot be verified")

		return nil, nil
	}

	opts := make([]option.ClientOption, 0, 1)
	if fbCfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(fbCfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if fbCfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: fbCfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	logger.Info("Firebase identity verifier initialized", slog.String("project_id", fbCfg.ProjectID))

	return newIdentityVerifier(client, logger), nil
}

func newIdentityVerifier(client tokenVerifier, logger *slog.Logger) *identityVerifier {
	return &identityVerifier{client: client, logger: logger}
}

// VerifyIDToken checks the ID token and maps its claims to an ExternalIdentity.
func (v *identityVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.ExternalIdentity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.WarnContext(ctx, "Firebase ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(service.ErrIdentityTokenInvalid, err.Error())
	}

	identity := &service.ExternalIdentity{
		Subject:  token.UID,
		Provider: providerName,
	}

	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}

	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}

	if verified, ok := token.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = verified
	}

	return identity, nil
}

// Provider names the identity provider.
func (v *identityVerifier) Provider() string {
	return providerName
}
