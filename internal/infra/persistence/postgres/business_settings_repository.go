package postgres

import (
	"context"
	"time"

	"bookkeeper/internal/domain/entity"
	domainerrors "bookkeeper/internal/domain/errors"
	"bookkeeper/internal/domain/repository"
	"bookkeeper/internal/errors"
	"bookkeeper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type businessSettingsRepository struct {
	db *gorm.DB
}

// NewBusinessSettingsRepository creates a settings repository on db, which may be a transaction.
func NewBusinessSettingsRepository(db *gorm.DB) repository.BusinessSettingsRepository {
	return &businessSettingsRepository{db: db}
}

func (repo *businessSettingsRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessSettings, error) {
	var settingsM model.BusinessSettingsModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		First(&settingsM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find business settings")
	}

	return toBusinessSettingsDomain(&settingsM), nil
}

// Upsert is a single INSERT ... ON CONFLICT (user_id) DO UPDATE. The stored row is
// then read back from the primary because the insert ID loses to an existing row's ID.
func (repo *businessSettingsRepository) Upsert(ctx context.Context, settings *entity.BusinessSettings) error {
	now := time.Now().UTC()
	settingsM := fromBusinessSettingsDomain(settings)
	settingsM.ID = uuid.New()
	settingsM.CreatedAt = now
	settingsM.UpdatedAt = now

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"fixed_costs",
				"target_profit",
				"average_selling_price",
				"updated_at",
			}),
		}).
		Create(settingsM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert business settings")
	}

	var stored model.BusinessSettingsModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("user_id = ?", settings.UserID).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload business settings")
	}

	*settings = *toBusinessSettingsDomain(&stored)

	return nil
}

func toBusinessSettingsDomain(data *model.BusinessSettingsModel) *entity.BusinessSettings {
	return &entity.BusinessSettings{
		ID:                  data.ID,
		UserID:              data.UserID,
		FixedCosts:          data.FixedCosts,
		TargetProfit:        data.TargetProfit,
		AverageSellingPrice: data.AverageSellingPrice,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromBusinessSettingsDomain(data *entity.BusinessSettings) *model.BusinessSettingsModel {
	return &model.BusinessSettingsModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		FixedCosts:          data.FixedCosts,
		TargetProfit:        data.TargetProfit,
		AverageSellingPrice: data.AverageSellingPrice,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
