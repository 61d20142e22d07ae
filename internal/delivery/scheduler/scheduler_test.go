package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bookkeeper/config"
	mockRepo "bookkeeper/internal/mocks/repository"
	mockUsecase "bookkeeper/internal/mocks/usecase"
	"bookkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestScheduler(t *testing.T, schedCfg *config.SchedulerConfig) (*scheduler, *mockRepo.MockUserRepository, *mockUsecase.MockReportUsecase, error) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	reportUC := mockUsecase.NewMockReportUsecase(t)

	d, err := NewScheduler(Params{
		Lc:       fxtest.NewLifecycle(t),
		Cfg:      &config.Config{Ledger: &config.LedgerConfig{Timezone: "UTC"}, Scheduler: schedCfg},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		UserRepo: userRepo,
		ReportUC: reportUC,
	})
	if err != nil {
		return nil, userRepo, reportUC, err
	}

	s := d.(*scheduler)
	s.now = func() time.Time { return time.Date(2024, 4, 1, 2, 0, 0, 0, time.UTC) }

	return s, userRepo, reportUC, nil
}

func TestNewScheduler(t *testing.T) {
	t.Run("disabled registers nothing", func(t *testing.T) {
		s, _, _, err := newTestScheduler(t, nil)
		require.NoError(t, err)
		assert.Empty(t, s.cron.Entries())
		assert.NoError(t, s.Serve(context.Background()))
	})

	t.Run("enabled registers the archive job", func(t *testing.T) {
		s, _, _, err := newTestScheduler(t, &config.SchedulerConfig{Enabled: true, ArchiveSpec: "0 0 2 1 * *"})
		require.NoError(t, err)
		assert.Len(t, s.cron.Entries(), 1)
	})

	t.Run("invalid spec", func(t *testing.T) {
		_, _, _, err := newTestScheduler(t, &config.SchedulerConfig{Enabled: true, ArchiveSpec: "every month"})
		assert.Error(t, err)
	})
}

func TestArchivePreviousMonth(t *testing.T) {
	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("archives every user and keeps going after a failure", func(t *testing.T) {
		s, userRepo, reportUC, err := newTestScheduler(t, nil)
		require.NoError(t, err)

		first, second := uuid.New(), uuid.New()
		userRepo.EXPECT().ListIDs(mock.Anything).Return([]uuid.UUID{first, second}, nil)
		reportUC.EXPECT().ArchiveMonth(mock.Anything, first, march).Return("", errors.New("bucket unavailable")).Once()
		reportUC.EXPECT().ArchiveMonth(mock.Anything, second, march).Return(second.String()+"/2024-03.xlsx", nil).Once()

		assert.NoError(t, s.archivePreviousMonth(context.Background()))
	})

	t.Run("stops when the archive is disabled", func(t *testing.T) {
		s, userRepo, reportUC, err := newTestScheduler(t, nil)
		require.NoError(t, err)

		userRepo.EXPECT().ListIDs(mock.Anything).Return([]uuid.UUID{uuid.New(), uuid.New()}, nil)
		reportUC.EXPECT().ArchiveMonth(mock.Anything, mock.Anything, march).
			Return("", errors.WithStack(usecase.ErrArchiveDisabled)).Once()

		assert.NoError(t, s.archivePreviousMonth(context.Background()))
	})

	t.Run("user listing failure", func(t *testing.T) {
		s, userRepo, _, err := newTestScheduler(t, nil)
		require.NoError(t, err)

		userRepo.EXPECT().ListIDs(mock.Anything).Return(nil, errors.New("connection refused"))

		assert.ErrorContains(t, s.archivePreviousMonth(context.Background()), "failed to list users")
	})
}
