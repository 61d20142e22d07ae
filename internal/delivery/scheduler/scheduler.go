// Package scheduler runs the background jobs of the bookkeeping service.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"bookkeeper/config"
	"bookkeeper/internal/delivery"
	deliverycontext "bookkeeper/internal/delivery/context"
	"bookkeeper/internal/domain/repository"
	"bookkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const archiveJobTimeout = 10 * time.Minute

type scheduler struct {
	cron     *cron.Cron
	userRepo repository.UserRepository
	reportUC usecase.ReportUsecase
	location *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	UserRepo repository.UserRepository
	ReportUC usecase.ReportUsecase
}

// NewScheduler registers the monthly archive job. The returned delivery idles
// when the scheduler is disabled.
func NewScheduler(params Params) (delivery.Delivery, error) {
	loc := params.Cfg.Ledger.Location()
	s := &scheduler{
		cron:     cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		userRepo: params.UserRepo,
		reportUC: params.ReportUC,
		location: loc,
		now:      time.Now,
		logger:   params.Logger,
	}

	if params.Cfg.Scheduler == nil || !params.Cfg.Scheduler.Enabled {
		params.Logger.Info("Scheduler disabled")

		return s, nil
	}

	spec := params.Cfg.Scheduler.ArchiveSpec
	if _, err := s.cron.AddFunc(spec, s.runArchive); err != nil {
		return nil, errors.Wrapf(err, "invalid archive schedule %q", spec)
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve starts the cron loop and blocks until ctx is cancelled.
func (s *scheduler) Serve(ctx context.Context) error {
	if len(s.cron.Entries()) == 0 {
		return nil
	}

	s.logger.Info("Starting scheduler", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()
	<-ctx.Done()

	return nil
}

func (s *scheduler) stop(ctx context.Context) error {
	s.logger.Info("Stopping scheduler")

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func (s *scheduler) runArchive() {
	ctx, cancel := context.WithTimeout(context.Background(), archiveJobTimeout)
	defer cancel()

	runID := uuid.NewString()
	ctx = deliverycontext.WithRequestID(ctx, runID)
	ctx = deliverycontext.WithLogger(ctx, s.logger.With(slog.String("job", "archive"), slog.String("run_id", runID)))

	if err := s.archivePreviousMonth(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Archive job failed", slog.Any("error", err))
	}
}

// archivePreviousMonth archives last month's report of every user. A failure
// for one user is logged and does not stop the others.
func (s *scheduler) archivePreviousMonth(ctx context.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	now := s.now().In(s.location)
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.location).AddDate(0, -1, 0)

	userIDs, err := s.userRepo.ListIDs(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list users")
	}

	archived, failed := 0, 0
	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		key, err := s.reportUC.ArchiveMonth(ctx, userID, month)
		if errors.Is(err, usecase.ErrArchiveDisabled) {
			logger.Warn("Report archive is not configured, skipping archive job")

			return nil
		}
		if err != nil {
			failed++
			logger.Error("Failed to archive monthly report",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)

			continue
		}

		archived++
		logger.Debug("Archived monthly report", slog.String("key", key))
	}

	logger.Info("Archive job finished",
		slog.String("month", month.Format("2006-01")),
		slog.Int("archived", archived),
		slog.Int("failed", failed),
	)

	return nil
}
