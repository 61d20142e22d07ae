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

// ledgerRepository stores income and expense transactions.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a ledger repository on db, which may be a transaction.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (repo *ledgerRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	txM := fromTransactionDomain(tx)

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	tx.CreatedAt = txM.CreatedAt
	tx.UpdatedAt = txM.UpdatedAt

	return nil
}

func (repo *ledgerRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Transaction, error) {
	var txM model.TransactionModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&txM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction")
	}

	return toTransactionDomain(&txM), nil
}

func (repo *ledgerRepository) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	filter repository.TransactionFilter,
) ([]*entity.Transaction, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if !filter.Start.IsZero() {
		query = query.Where("occurred_at >= ?", filter.Start.UTC())
	}
	if !filter.End.IsZero() {
		query = query.Where("occurred_at < ?", filter.End.UTC())
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind.String())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var txMs []*model.TransactionModel
	if err := query.Order("occurred_at DESC, created_at DESC").Find(&txMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	txs := make([]*entity.Transaction, 0, len(txMs))
	for _, txM := range txMs {
		txs = append(txs, toTransactionDomain(txM))
	}

	return txs, nil
}

// Update replaces every mutable column. CreatedAt is never touched.
func (repo *ledgerRepository) Update(ctx context.Context, tx *entity.Transaction) error {
	now := time.Now().UTC()
	result := repo.db.WithContext(ctx).Model(&model.TransactionModel{}).
		Where("id = ? AND user_id = ?", tx.ID, tx.UserID).
		Updates(map[string]any{
			"customer_id": tx.CustomerID,
			"category_id": tx.CategoryID,
			"kind":        tx.Kind.String(),
			"amount":      tx.Amount,
			"description": tx.Description,
			"occurred_at": tx.OccurredAt.UTC(),
			"updated_at":  now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update transaction")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	tx.UpdatedAt = now

	return nil
}

func (repo *ledgerRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete transaction")
	}

	return result.RowsAffected > 0, nil
}

func (repo *ledgerRepository) DetachCustomer(ctx context.Context, ownerID, customerID uuid.UUID) error {
	return repo.detach(ctx, "customer_id", ownerID, customerID)
}

func (repo *ledgerRepository) DetachCategory(ctx context.Context, ownerID, categoryID uuid.UUID) error {
	return repo.detach(ctx, "category_id", ownerID, categoryID)
}

func (repo *ledgerRepository) detach(ctx context.Context, column string, ownerID, refID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Model(&model.TransactionModel{}).
		Where("user_id = ? AND "+column+" = ?", ownerID, refID).
		Updates(map[string]any{
			column:       gorm.Expr("NULL"),
			"updated_at": time.Now().UTC(),
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to detach "+column)
	}

	return nil
}

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	return &entity.Transaction{
		ID:          data.ID,
		UserID:      data.UserID,
		CustomerID:  data.CustomerID,
		CategoryID:  data.CategoryID,
		Kind:        entity.TransactionKind(data.Kind),
		Amount:      data.Amount,
		Description: data.Description,
		OccurredAt:  data.OccurredAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	return &model.TransactionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		CustomerID:  data.CustomerID,
		CategoryID:  data.CategoryID,
		Kind:        data.Kind.String(),
		Amount:      data.Amount,
		Description: data.Description,
		OccurredAt:  data.OccurredAt.UTC(),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
