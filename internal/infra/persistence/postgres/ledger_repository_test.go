package postgres

import (
	"context"
	"testing"
	"time"

	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/money"
	"bookkeeper/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(owner uuid.UUID, kind entity.TransactionKind, amount string, at time.Time) *entity.Transaction {
	return &entity.Transaction{
		UserID:      owner,
		Kind:        kind,
		Amount:      money.MustParse(amount),
		Description: kind.String() + " " + amount,
		OccurredAt:  at,
	}
}

func TestLedgerRepository_ListByOwner(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	owner := createTestUser(t, db, "owner")
	stranger := createTestUser(t, db, "stranger")

	jan := newTestTransaction(owner.ID, entity.KindIncome, "100.00", day(2024, time.January, 15))
	feb := newTestTransaction(owner.ID, entity.KindExpense, "40.50", day(2024, time.February, 3))
	mar := newTestTransaction(owner.ID, entity.KindIncome, "12.25", day(2024, time.March, 1))
	other := newTestTransaction(stranger.ID, entity.KindIncome, "999.00", day(2024, time.February, 10))
	for _, tx := range []*entity.Transaction{jan, feb, mar, other} {
		require.NoError(t, repo.Create(ctx, tx))
	}

	t.Run("newest first and owner scoped", func(t *testing.T) {
		txs, err := repo.ListByOwner(ctx, owner.ID, repository.TransactionFilter{})
		require.NoError(t, err)
		require.Len(t, txs, 3)
		assert.Equal(t, []uuid.UUID{mar.ID, feb.ID, jan.ID}, []uuid.UUID{txs[0].ID, txs[1].ID, txs[2].ID})
		assert.Equal(t, "40.50", txs[1].Amount.String())
	})

	t.Run("half-open period", func(t *testing.T) {
		txs, err := repo.ListByOwner(ctx, owner.ID, repository.TransactionFilter{
			Start: day(2024, time.January, 15),
			End:   day(2024, time.March, 1),
		})
		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.Equal(t, feb.ID, txs[0].ID)
		assert.Equal(t, jan.ID, txs[1].ID)
	})

	t.Run("kind and limit", func(t *testing.T) {
		txs, err := repo.ListByOwner(ctx, owner.ID, repository.TransactionFilter{Kind: entity.KindIncome, Limit: 1})
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, mar.ID, txs[0].ID)
	})
}

func TestLedgerRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	owner := createTestUser(t, db, "owner")
	stranger := createTestUser(t, db, "stranger")

	tx := newTestTransaction(owner.ID, entity.KindIncome, "100.00", day(2024, time.May, 2))
	require.NoError(t, repo.Create(ctx, tx))

	_, err := repo.FindByID(ctx, tx.ID, stranger.ID)
	assert.ErrorIs(t, err, repository.ErrTransactionNotFound)

	tx.Amount = money.MustParse("150.75")
	tx.Description = "adjusted"
	require.NoError(t, repo.Update(ctx, tx))

	stored, err := repo.FindByID(ctx, tx.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "150.75", stored.Amount.String())
	assert.Equal(t, "adjusted", stored.Description)
	assert.True(t, stored.OccurredAt.Equal(day(2024, time.May, 2)))

	hijack := *tx
	hijack.UserID = stranger.ID
	assert.ErrorIs(t, repo.Update(ctx, &hijack), repository.ErrTransactionNotFound)

	deleted, err := repo.Delete(ctx, tx.ID, stranger.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.Delete(ctx, tx.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.FindByID(ctx, tx.ID, owner.ID)
	assert.ErrorIs(t, err, repository.ErrTransactionNotFound)
}

func TestLedgerRepository_Detach(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	owner := createTestUser(t, db, "owner")

	customerID := uuid.New()
	categoryID := uuid.New()
	tx := newTestTransaction(owner.ID, entity.KindIncome, "10.00", day(2024, time.June, 1))
	tx.CustomerID = &customerID
	tx.CategoryID = &categoryID
	require.NoError(t, repo.Create(ctx, tx))

	require.NoError(t, repo.DetachCustomer(ctx, owner.ID, customerID))
	stored, err := repo.FindByID(ctx, tx.ID, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.CustomerID)
	require.NotNil(t, stored.CategoryID)
	assert.Equal(t, categoryID, *stored.CategoryID)

	require.NoError(t, repo.DetachCategory(ctx, owner.ID, categoryID))
	stored, err = repo.FindByID(ctx, tx.ID, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.CategoryID)
}

func TestLedgerRepository_CreateRejectsOversizedAmount(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	owner := createTestUser(t, db, "owner")

	tx := newTestTransaction(owner.ID, entity.KindIncome, "1.00", day(2024, time.January, 15))
	tx.ID = uuid.New()
	tx.Amount = money.MaxAmount.MulInt(12345)

	require.Error(t, repo.Create(ctx, tx))

	_, err := repo.FindByID(ctx, tx.ID, owner.ID)
	assert.ErrorIs(t, err, repository.ErrTransactionNotFound)
}
