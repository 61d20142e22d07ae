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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID reads from the primary so a user created earlier in the request is always visible.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) FindByExternalAuthID(ctx context.Context, externalAuthID string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("external_auth_id = ?", externalAuthID).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by external auth id")
	}

	return toUserDomain(&userM), nil
}

// CreateIfAbsent issues INSERT ... ON CONFLICT (external_auth_id) DO NOTHING.
// A conflict on email alone means another identity already owns the address.
func (repo *userRepository) CreateIfAbsent(ctx context.Context, user *entity.User) (bool, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_auth_id"}},
			DoNothing: true,
		}).
		Create(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return false, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create user")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return true, nil
}

// Update writes the editable profile fields.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":          user.Name,
			"business_name": user.BusinessName,
			"updated_at":    now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = now

	return nil
}

func (repo *userRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Order("created_at").
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user ids")
	}

	return ids, nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	return &entity.User{
		ID:             data.ID,
		ExternalAuthID: data.ExternalAuthID,
		Email:          data.Email,
		Name:           data.Name,
		BusinessName:   data.BusinessName,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:             data.ID,
		ExternalAuthID: data.ExternalAuthID,
		Email:          data.Email,
		Name:           data.Name,
		BusinessName:   data.BusinessName,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
