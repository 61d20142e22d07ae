package impl

import (
	"context"
	"log/slog"
	"strings"

	"bookkeeper/config"
	deliverycontext "bookkeeper/internal/delivery/context"
	"bookkeeper/internal/domain/entity"
	domainerrors "bookkeeper/internal/domain/errors"
	"bookkeeper/internal/domain/repository"
	"bookkeeper/internal/domain/service"
	"bookkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCategoryColor = "#059669"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager       repository.TransactionManager
	verifier        service.IdentityVerifier
	tokenService    service.TokenService
	seeds           []config.CategorySeed
	allowUnverified bool
	logger          *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Verifier     service.IdentityVerifier `optional:"true"`
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:    params.TxManager,
		verifier:     params.Verifier,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}

	if params.Config != nil {
		if params.Config.Ledger != nil {
			srv.seeds = params.Config.Ledger.DefaultCategories
		}
		if params.Config.Auth != nil {
			srv.allowUnverified = params.Config.Auth.AllowUnverifiedRegistration
		}
	}

	return srv
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register resolves the identity, then gets or creates the user in one DB transaction.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	identity, err := srv.resolveIdentity(ctx, input)
	if err != nil {
		return nil, err
	}

	var (
		user    *entity.User
		created bool
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		candidate := &entity.User{
			ID:             uuid.New(),
			ExternalAuthID: identity.Subject,
			Email:          identity.Email,
			Name:           identity.Name,
		}

		var err error
		created, err = userRepo.CreateIfAbsent(ctx, candidate)
		if err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		if created {
			if err := repoFactory.NewCategoryRepository().CreateBatch(ctx, srv.seedCategories(ctx, candidate.ID)); err != nil {
				return errors.Wrap(err, "failed to seed default categories")
			}
		}

		user, err = userRepo.FindByExternalAuthID(ctx, identity.Subject)
		if err != nil {
			return errors.Wrap(err, "failed to load user after registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction",
			slog.String("provider", identity.Provider),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User signed in",
		slog.String("userID", user.ID.String()),
		slog.Bool("created", created),
		slog.String("provider", identity.Provider),
	)

	return &usecase.AuthOutput{
		User:        user,
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Created:     created,
	}, nil
}

func (srv *authService) resolveIdentity(ctx context.Context, input *usecase.RegisterInput) (*service.ExternalIdentity, error) {
	var identity *service.ExternalIdentity

	switch {
	case input.IDToken != "" && srv.verifier != nil:
		verified, err := srv.verifier.VerifyIDToken(ctx, input.IDToken)
		if err != nil {
			srv.log(ctx).Warn("Identity token rejected", slog.Any("error", err))

			return nil, domainerrors.ErrIdentityTokenInvalid.WrapMessage("failed to verify identity token")
		}
		identity = verified
	case srv.verifier != nil:
		return nil, validationFailed("idToken", "is required")
	case srv.allowUnverified:
		if strings.TrimSpace(input.ExternalAuthID) == "" {
			return nil, validationFailed("externalAuthId", "is required")
		}
		identity = &service.ExternalIdentity{
			Subject:  strings.TrimSpace(input.ExternalAuthID),
			Email:    strings.TrimSpace(input.Email),
			Name:     strings.TrimSpace(input.Name),
			Provider: "unverified",
		}
	default:
		return nil, errors.WithStack(domainerrors.ErrIdentityProviderUnavailable)
	}

	if identity.Email == "" {
		return nil, validationFailed("email", "is required")
	}

	return identity, nil
}

// seedCategories builds the configured default categories for a new owner.
// Seeds with an unknown kind are skipped.
func (srv *authService) seedCategories(ctx context.Context, userID uuid.UUID) []*entity.TransactionCategory {
	categories := make([]*entity.TransactionCategory, 0, len(srv.seeds))
	for _, seed := range srv.seeds {
		kind := entity.TransactionKind(seed.Kind)
		if !kind.IsValid() || strings.TrimSpace(seed.Name) == "" {
			srv.log(ctx).Warn("Skipping invalid default category", slog.String("name", seed.Name), slog.String("kind", seed.Kind))

			continue
		}

		color := seed.Color
		if color == "" {
			color = defaultCategoryColor
		}

		categories = append(categories, &entity.TransactionCategory{
			ID:     uuid.New(),
			UserID: userID,
			Name:   strings.TrimSpace(seed.Name),
			Kind:   kind,
			Color:  color,
		})
	}

	return categories
}
