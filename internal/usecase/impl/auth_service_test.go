package impl

import (
	"context"
	"testing"
	"time"

	"bookkeeper/internal/domain/entity"
	domainerrors "bookkeeper/internal/domain/errors"
	"bookkeeper/internal/domain/service"
	mockRepo "bookkeeper/internal/mocks/repository"
	mockService "bookkeeper/internal/mocks/service"
	"bookkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	categoryRepo *mockRepo.MockCategoryRepository
	verifier     *mockService.MockIdentityVerifier
	tokenService *mockService.MockTokenService
}

func newAuthServiceFixtures(t *testing.T) authServiceFixtures {
	return authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		verifier:     mockService.NewMockIdentityVerifier(t),
		tokenService: mockService.NewMockTokenService(t),
	}
}

func (f authServiceFixtures) service(withVerifier, allowUnverified bool) usecase.AuthUsecase {
	cfg := newTestConfig()
	cfg.Auth.AllowUnverifiedRegistration = allowUnverified

	params := AuthServiceParams{
		TxManager:    f.txManager,
		TokenService: f.tokenService,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	}
	if withVerifier {
		params.Verifier = f.verifier
	}

	return NewAuthService(params)
}

func TestAuthService_Register_NewUserSeedsCategories(t *testing.T) {
	f := newAuthServiceFixtures(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)
	stored := &entity.User{ID: uuid.New(), ExternalAuthID: "fb-1", Email: "sari@example.com", Name: "Sari"}

	f.verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(&service.ExternalIdentity{
		Subject:  "fb-1",
		Email:    "sari@example.com",
		Name:     "Sari",
		Provider: "firebase",
	}, nil)
	f.txManager.EXPECT().Execute(ctx, mock.Anything).Return(f.factory)
	f.factory.EXPECT().NewUserRepository().Return(f.userRepo)
	f.factory.EXPECT().NewCategoryRepository().Return(f.categoryRepo)
	f.userRepo.EXPECT().CreateIfAbsent(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.ExternalAuthID == "fb-1" && u.Email == "sari@example.com"
	})).Return(true, nil)
	f.categoryRepo.EXPECT().CreateBatch(ctx, mock.MatchedBy(func(cs []*entity.TransactionCategory) bool {
		if len(cs) != 7 {
			return false
		}
		for _, c := range cs {
			if !c.Kind.IsValid() || c.Color == "" {
				return false
			}
		}

		return cs[0].Name == "Penjualan" && cs[6].Kind == entity.KindExpense
	})).Return(nil)
	f.userRepo.EXPECT().FindByExternalAuthID(ctx, "fb-1").Return(stored, nil)
	f.tokenService.EXPECT().GenerateAccessToken(stored.ID).Return("access", expiresAt, nil)

	out, err := f.service(true, false).Register(ctx, &usecase.RegisterInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.True(t, out.Created)
	assert.Equal(t, stored, out.User)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, expiresAt, out.ExpiresAt)
}

func TestAuthService_Register_ExistingUserIsNotReseeded(t *testing.T) {
	f := newAuthServiceFixtures(t)
	ctx := context.Background()
	stored := &entity.User{ID: uuid.New(), ExternalAuthID: "fb-1", Email: "sari@example.com"}

	f.verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(&service.ExternalIdentity{
		Subject: "fb-1",
		Email:   "sari@example.com",
	}, nil)
	f.txManager.EXPECT().Execute(ctx, mock.Anything).Return(f.factory)
	f.factory.EXPECT().NewUserRepository().Return(f.userRepo)
	f.userRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything).Return(false, nil)
	f.userRepo.EXPECT().FindByExternalAuthID(ctx, "fb-1").Return(stored, nil)
	f.tokenService.EXPECT().GenerateAccessToken(stored.ID).Return("access", time.Now(), nil)

	out, err := f.service(true, false).Register(ctx, &usecase.RegisterInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.False(t, out.Created)
	f.factory.AssertNotCalled(t, "NewCategoryRepository")
}

func TestAuthService_Register_IdentityErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("token rejected", func(t *testing.T) {
		f := newAuthServiceFixtures(t)
		f.verifier.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, service.ErrIdentityTokenInvalid)

		_, err := f.service(true, false).Register(ctx, &usecase.RegisterInput{IDToken: "bad"})
		assert.ErrorIs(t, err, domainerrors.ErrIdentityTokenInvalid)
	})

	t.Run("token required when a provider is configured", func(t *testing.T) {
		f := newAuthServiceFixtures(t)

		_, err := f.service(true, true).Register(ctx, &usecase.RegisterInput{ExternalAuthID: "x", Email: "x@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("no provider and unverified registration disabled", func(t *testing.T) {
		f := newAuthServiceFixtures(t)

		_, err := f.service(false, false).Register(ctx, &usecase.RegisterInput{ExternalAuthID: "x", Email: "x@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrIdentityProviderUnavailable)
	})

	t.Run("unverified registration requires email", func(t *testing.T) {
		f := newAuthServiceFixtures(t)

		_, err := f.service(false, true).Register(ctx, &usecase.RegisterInput{ExternalAuthID: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAuthService_Register_TransactionFailure(t *testing.T) {
	f := newAuthServiceFixtures(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	f.txManager.EXPECT().Execute(ctx, mock.Anything).Return(f.factory)
	f.factory.EXPECT().NewUserRepository().Return(f.userRepo)
	f.userRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything).Return(false, dbErr)

	_, err := f.service(false, true).Register(ctx, &usecase.RegisterInput{
		ExternalAuthID: "local-1",
		Email:          "dev@example.com",
	})
	assert.ErrorIs(t, err, dbErr)
	f.tokenService.AssertNotCalled(t, "GenerateAccessToken", mock.Anything)
}
