package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bookkeeper/internal/delivery/context"
	"bookkeeper/internal/domain/entity"
	domainerrors "bookkeeper/internal/domain/errors"
	"bookkeeper/internal/domain/repository"
	"bookkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService creates the category use case.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) CreateCategory(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.CreateCategoryInput,
) (*entity.TransactionCategory, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validationFailed("name", "is required")
	}
	if !input.Kind.IsValid() {
		return nil, validationFailed("kind", "must be income or expense")
	}

	color := input.Color
	if color == "" {
		color = defaultCategoryColor
	}

	category := &entity.TransactionCategory{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
		Kind:   input.Kind,
		Color:  color,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

func (srv *categoryService) ListCategories(
	ctx context.Context,
	userID uuid.UUID,
	kind *entity.TransactionKind,
) ([]*entity.TransactionCategory, error) {
	if kind != nil && !kind.IsValid() {
		return nil, validationFailed("kind", "must be income or expense")
	}

	categories, err := srv.categoryRepo.ListByOwner(ctx, userID, kind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *categoryService) UpdateCategory(
	ctx context.Context,
	userID, categoryID uuid.UUID,
	input *usecase.UpdateCategoryInput,
) (*entity.TransactionCategory, error) {
	category, err := srv.categoryRepo.FindByID(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.WithStack(domainerrors.ErrCategoryNotFound)
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, validationFailed("name", "must not be empty")
		}
		category.Name = name
	}
	if input.Color != nil && *input.Color != "" {
		category.Color = *input.Color
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.WithStack(domainerrors.ErrCategoryNotFound)
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// DeleteCategory leaves the owner's transactions uncategorized in the same DB transaction.
func (srv *categoryService) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deleted, err := repoFactory.NewCategoryRepository().Delete(ctx, categoryID, userID)
		if err != nil {
			return errors.Wrap(err, "failed to delete category")
		}
		if !deleted {
			return errors.WithStack(domainerrors.ErrCategoryNotFound)
		}

		if err := repoFactory.NewLedgerRepository().DetachCategory(ctx, userID, categoryID); err != nil {
			return errors.Wrap(err, "failed to detach category from transactions")
		}

		return nil
	})
	if err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Category deleted",
		slog.String("userID", userID.String()),
		slog.String("categoryID", categoryID.String()),
	)

	return nil
}
