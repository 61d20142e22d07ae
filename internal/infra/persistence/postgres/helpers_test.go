package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bookkeeper/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		NowFunc:                nowUTC,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, externalID string) *entity.User {
	t.Helper()

	user := &entity.User{
		ExternalAuthID: externalID,
		Email:          externalID + "@example.com",
		Name:           "Owner " + externalID,
	}
	created, err := NewUserRepository(db).CreateIfAbsent(context.Background(), user)
	require.NoError(t, err)
	require.True(t, created)

	return user
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 9, 0, 0, 0, time.UTC)
}
