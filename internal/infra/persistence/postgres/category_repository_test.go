package postgres

import (
	"context"
	"testing"

	"bookkeeper/internal/domain/entity"
	domainerrors "bookkeeper/internal/domain/errors"
	"bookkeeper/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	owner := createTestUser(t, db, "owner")
	stranger := createTestUser(t, db, "stranger")

	seed := []*entity.TransactionCategory{
		{UserID: owner.ID, Name: "Penjualan", Kind: entity.KindIncome, Color: "#10B981"},
		{UserID: owner.ID, Name: "Jasa", Kind: entity.KindIncome, Color: "#059669"},
		{UserID: owner.ID, Name: "Operasional", Kind: entity.KindExpense, Color: "#EF4444"},
	}
	require.NoError(t, repo.CreateBatch(ctx, seed))

	t.Run("list filters by kind", func(t *testing.T) {
		income := entity.KindIncome
		categories, err := repo.ListByOwner(ctx, owner.ID, &income)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Jasa", categories[0].Name)
		assert.Equal(t, "Penjualan", categories[1].Name)

		all, err := repo.ListByOwner(ctx, owner.ID, nil)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		none, err := repo.ListByOwner(ctx, stranger.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("same name and kind conflicts", func(t *testing.T) {
		dup := &entity.TransactionCategory{UserID: owner.ID, Name: "Jasa", Kind: entity.KindIncome, Color: "#000000"}
		assert.ErrorIs(t, repo.Create(ctx, dup), domainerrors.ErrCategoryAlreadyExists)

		sameNameOtherKind := &entity.TransactionCategory{UserID: owner.ID, Name: "Jasa", Kind: entity.KindExpense, Color: "#000000"}
		assert.NoError(t, repo.Create(ctx, sameNameOtherKind))

		otherOwner := &entity.TransactionCategory{UserID: stranger.ID, Name: "Jasa", Kind: entity.KindIncome, Color: "#000000"}
		assert.NoError(t, repo.Create(ctx, otherOwner))
	})

	t.Run("update and delete are owner scoped", func(t *testing.T) {
		category := seed[0]
		category.Name = "Penjualan Online"
		category.Color = "#123456"
		require.NoError(t, repo.Update(ctx, category))

		stored, err := repo.FindByID(ctx, category.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "Penjualan Online", stored.Name)
		assert.Equal(t, entity.KindIncome, stored.Kind)

		_, err = repo.FindByID(ctx, category.ID, stranger.ID)
		assert.ErrorIs(t, err, repository.ErrCategoryNotFound)

		deleted, err := repo.Delete(ctx, category.ID, stranger.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = repo.Delete(ctx, category.ID, owner.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
	})
}
