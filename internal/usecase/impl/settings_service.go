package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookkeeper/internal/delivery/context"
	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/repository"
	"bookkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type settingsService struct {
	settingsRepo repository.BusinessSettingsRepository
	logger       *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	SettingsRepo repository.BusinessSettingsRepository
	Logger       *slog.Logger
}

// NewSettingsService creates the business settings use case.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: params.SettingsRepo,
		logger:       params.Logger,
	}
}

func (srv *settingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.BusinessSettings, error) {
	return loadSettings(ctx, srv.settingsRepo, userID)
}

func (srv *settingsService) UpsertSettings(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.SettingsInput,
) (*entity.BusinessSettings, error) {
	switch {
	case input.FixedCosts.IsNegative():
		return nil, validationFailed("fixedCosts", "must not be negative")
	case input.TargetProfit.IsNegative():
		return nil, validationFailed("targetProfit", "must not be negative")
	case input.AverageSellingPrice.IsNegative():
		return nil, validationFailed("averageSellingPrice", "must not be negative")
	case !input.FixedCosts.InRange():
		return nil, validationFailed("fixedCosts", "exceeds the largest storable amount")
	case !input.TargetProfit.InRange():
		return nil, validationFailed("targetProfit", "exceeds the largest storable amount")
	case !input.AverageSellingPrice.InRange():
		return nil, validationFailed("averageSellingPrice", "exceeds the largest storable amount")
	}

	settings := &entity.BusinessSettings{
		UserID:              userID,
		FixedCosts:          input.FixedCosts,
		TargetProfit:        input.TargetProfit,
		AverageSellingPrice: input.AverageSellingPrice,
	}
	if err := srv.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to save business settings")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Business settings saved", slog.String("userID", userID.String()))

	return settings, nil
}

// loadSettings returns the stored settings or all-zero defaults.
func loadSettings(ctx context.Context, repo repository.BusinessSettingsRepository, userID uuid.UUID) (*entity.BusinessSettings, error) {
	settings, err := repo.FindByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessSettingsNotFound) {
			return entity.DefaultBusinessSettings(userID), nil
		}

		return nil, errors.Wrap(err, "failed to find business settings")
	}

	return settings, nil
}
