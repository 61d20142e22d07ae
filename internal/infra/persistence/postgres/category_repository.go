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

const categoryBatchSize = 50

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository on db, which may be a transaction.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.TransactionCategory) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCategoryAlreadyExists.WrapMessage(category.Name)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) CreateBatch(ctx context.Context, categories []*entity.TransactionCategory) error {
	if len(categories) == 0 {
		return nil
	}

	categoryMs := make([]*model.TransactionCategoryModel, 0, len(categories))
	for _, category := range categories {
		if category.ID == uuid.Nil {
			category.ID = uuid.New()
		}
		categoryMs = append(categoryMs, fromCategoryDomain(category))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(categoryMs, categoryBatchSize).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCategoryAlreadyExists.WrapMessage("duplicate category in batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create categories")
	}

	for i, categoryM := range categoryMs {
		categories[i].CreatedAt = categoryM.CreatedAt
		categories[i].UpdatedAt = categoryM.UpdatedAt
	}

	return nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.TransactionCategory, error) {
	var categoryM model.TransactionCategoryModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&categoryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	kind *entity.TransactionKind,
) ([]*entity.TransactionCategory, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if kind != nil {
		query = query.Where("kind = ?", kind.String())
	}

	var categoryMs []*model.TransactionCategoryModel
	if err := query.Order("kind, name").Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.TransactionCategory, 0, len(categoryMs))
	for _, categoryM := range categoryMs {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// Update changes name and color. Kind is fixed at creation since transactions depend on it.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.TransactionCategory) error {
	now := time.Now().UTC()
	result := repo.db.WithContext(ctx).Model(&model.TransactionCategoryModel{}).
		Where("id = ? AND user_id = ?", category.ID, category.UserID).
		Updates(map[string]any{
			"name":       category.Name,
			"color":      category.Color,
			"updated_at": now,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryAlreadyExists.WrapMessage(category.Name)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	category.UpdatedAt = now

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.TransactionCategoryModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}

	return result.RowsAffected > 0, nil
}

func toCategoryDomain(data *model.TransactionCategoryModel) *entity.TransactionCategory {
	return &entity.TransactionCategory{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Kind:      entity.TransactionKind(data.Kind),
		Color:     data.Color,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.TransactionCategory) *model.TransactionCategoryModel {
	return &model.TransactionCategoryModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Kind:      data.Kind.String(),
		Color:     data.Color,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
