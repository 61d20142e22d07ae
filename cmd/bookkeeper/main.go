package main

import (
	"context"
	"log/slog"
	"os"

	"bookkeeper/config"
	"bookkeeper/internal/delivery"
	"bookkeeper/internal/delivery/api"
	"bookkeeper/internal/delivery/api/middleware"
	"bookkeeper/internal/delivery/api/router/handler"
	"bookkeeper/internal/delivery/scheduler"
	"bookkeeper/internal/domain/service"
	"bookkeeper/internal/infra/archive"
	"bookkeeper/internal/infra/auth"
	"bookkeeper/internal/infra/auth/firebase"
	"bookkeeper/internal/infra/export"
	logs "bookkeeper/internal/infra/log"
	"bookkeeper/internal/infra/persistence/postgres"
	"bookkeeper/internal/infra/pubsub"
	"bookkeeper/internal/infra/qrcode"
	"bookkeeper/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRCodeSize  = 256
	defaultQRCodeLevel = "M"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewLedgerRepository,
			postgres.NewCustomerRepository,
			postgres.NewCategoryRepository,
			postgres.NewHppCalculationRepository,
			postgres.NewBusinessSettingsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			firebase.NewIdentityVerifier,
			pubsub.NewEventPublisher,
			export.NewXLSXExporter,
			archive.New,
			newQRCodeService,
		),
	)
}

// newQRCodeService falls back to defaults when receipts are not configured.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(defaultQRCodeSize, defaultQRCodeLevel)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewTransactionService,
			impl.NewCustomerService,
			impl.NewCategoryService,
			impl.NewHppService,
			impl.NewSettingsService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewTransactionHandler,
			handler.NewCustomerHandler,
			handler.NewCategoryHandler,
			handler.NewReportHandler,
			handler.NewHppHandler,
			handler.NewSettingsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	serveCtx, cancel := context.WithCancel(ctx)
	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(serveCtx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
