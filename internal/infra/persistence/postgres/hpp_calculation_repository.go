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
)

type hppCalculationRepository struct {
	db *gorm.DB
}

// NewHppCalculationRepository creates an HPP history repository on db, which may be a transaction.
func NewHppCalculationRepository(db *gorm.DB) repository.HppCalculationRepository {
	return &hppCalculationRepository{db: db}
}

func (repo *hppCalculationRepository) Create(ctx context.Context, calc *entity.HppCalculation) error {
	if calc.ID == uuid.Nil {
		calc.ID = uuid.New()
	}
	calcM := fromHppCalculationDomain(calc)

	if err := repo.db.WithContext(ctx).Create(calcM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create hpp calculation")
	}

	calc.CreatedAt = calcM.CreatedAt
	calc.UpdatedAt = calcM.UpdatedAt

	return nil
}

func (repo *hppCalculationRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.HppCalculation, error) {
	var calcM model.HppCalculationModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&calcM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHppCalculationNotFound
		}

		return nil, errors.Wrap(err, "failed to find hpp calculation")
	}

	return toHppCalculationDomain(&calcM), nil
}

func (repo *hppCalculationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.HppCalculation, error) {
	var calcMs []*model.HppCalculationModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&calcMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list hpp calculations")
	}

	calcs := make([]*entity.HppCalculation, 0, len(calcMs))
	for _, calcM := range calcMs {
		calcs = append(calcs, toHppCalculationDomain(calcM))
	}

	return calcs, nil
}

// Update stores inputs and derived totals together; callers recompute before calling.
func (repo *hppCalculationRepository) Update(ctx context.Context, calc *entity.HppCalculation) error {
	now := time.Now().UTC()
	result := repo.db.WithContext(ctx).Model(&model.HppCalculationModel{}).
		Where("id = ? AND user_id = ?", calc.ID, calc.UserID).
		Updates(map[string]any{
			"product_name":      calc.ProductName,
			"raw_material_cost": calc.RawMaterialCost,
			"labor_cost":        calc.LaborCost,
			"overhead_cost":     calc.OverheadCost,
			"total_units":       calc.TotalUnits,
			"total_hpp":         calc.TotalHPP,
			"hpp_per_unit":      calc.HppPerUnit,
			"updated_at":        now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update hpp calculation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHppCalculationNotFound
	}

	calc.UpdatedAt = now

	return nil
}

func (repo *hppCalculationRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.HppCalculationModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete hpp calculation")
	}

	return result.RowsAffected > 0, nil
}

func toHppCalculationDomain(data *model.HppCalculationModel) *entity.HppCalculation {
	return &entity.HppCalculation{
		ID:              data.ID,
		UserID:          data.UserID,
		ProductName:     data.ProductName,
		RawMaterialCost: data.RawMaterialCost,
		LaborCost:       data.LaborCost,
		OverheadCost:    data.OverheadCost,
		TotalUnits:      data.TotalUnits,
		TotalHPP:        data.TotalHPP,
		HppPerUnit:      data.HppPerUnit,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromHppCalculationDomain(data *entity.HppCalculation) *model.HppCalculationModel {
	return &model.HppCalculationModel{
		ID:              data.ID,
		UserID:          data.UserID,
		ProductName:     data.ProductName,
		RawMaterialCost: data.RawMaterialCost,
		LaborCost:       data.LaborCost,
		OverheadCost:    data.OverheadCost,
		TotalUnits:      data.TotalUnits,
		TotalHPP:        data.TotalHPP,
		HppPerUnit:      data.HppPerUnit,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
