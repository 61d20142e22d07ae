package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "bookkeeper/internal/delivery/context"
	"bookkeeper/internal/domain/entity"
	domainerrors "bookkeeper/internal/domain/errors"
	"bookkeeper/internal/domain/finance"
	"bookkeeper/internal/domain/repository"
	"bookkeeper/internal/domain/service"
	"bookkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type hppService struct {
	hppRepo   repository.HppCalculationRepository
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// HppServiceParams holds dependencies for HppService, injected by Fx.
type HppServiceParams struct {
	fx.In

	HppRepo   repository.HppCalculationRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewHppService creates the HPP calculation use case.
func NewHppService(params HppServiceParams) usecase.HppUsecase {
	return &hppService{
		hppRepo:   params.HppRepo,
		publisher: params.Publisher,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *hppService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *hppService) PreviewHpp(_ context.Context, input *usecase.HppInput) (*usecase.HppOutput, error) {
	calc, err := srv.build(uuid.Nil, input)
	if err != nil {
		return nil, err
	}
	calc.ID = uuid.Nil

	return newHppOutput(calc, input), nil
}

func (srv *hppService) CreateHpp(ctx context.Context, userID uuid.UUID, input *usecase.HppInput) (*usecase.HppOutput, error) {
	calc, err := srv.build(userID, input)
	if err != nil {
		return nil, err
	}

	if err := srv.hppRepo.Create(ctx, calc); err != nil {
		return nil, errors.Wrap(err, "failed to create hpp calculation")
	}

	srv.publish(ctx, calc)

	return newHppOutput(calc, input), nil
}

func (srv *hppService) ListHpp(ctx context.Context, userID uuid.UUID) ([]*entity.HppCalculation, error) {
	calcs, err := srv.hppRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hpp calculations")
	}

	return calcs, nil
}

// UpdateHpp always recomputes the derived totals from the new inputs.
func (srv *hppService) UpdateHpp(
	ctx context.Context,
	userID, calculationID uuid.UUID,
	input *usecase.HppInput,
) (*usecase.HppOutput, error) {
	if err := checkSellingPrice(input); err != nil {
		return nil, err
	}

	calc, err := srv.hppRepo.FindByID(ctx, calculationID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrHppCalculationNotFound) {
			return nil, errors.WithStack(domainerrors.ErrHppCalculationNotFound)
		}

		return nil, errors.Wrap(err, "failed to find hpp calculation")
	}

	productName := strings.TrimSpace(input.ProductName)
	if productName == "" {
		return nil, validationFailed("productName", "is required")
	}

	calc.ProductName = productName
	calc.RawMaterialCost = input.RawMaterialCost
	calc.LaborCost = input.LaborCost
	calc.OverheadCost = input.OverheadCost
	calc.TotalUnits = input.TotalUnits
	if err := finance.Recalculate(calc); err != nil {
		return nil, fromEngineError(err)
	}

	if err := srv.hppRepo.Update(ctx, calc); err != nil {
		if errors.Is(err, repository.ErrHppCalculationNotFound) {
			return nil, errors.WithStack(domainerrors.ErrHppCalculationNotFound)
		}

		return nil, errors.Wrap(err, "failed to update hpp calculation")
	}

	srv.publish(ctx, calc)

	return newHppOutput(calc, input), nil
}

func (srv *hppService) DeleteHpp(ctx context.Context, userID, calculationID uuid.UUID) error {
	deleted, err := srv.hppRepo.Delete(ctx, calculationID, userID)
	if err != nil {
		return errors.Wrap(err, "failed to delete hpp calculation")
	}
	if !deleted {
		return errors.WithStack(domainerrors.ErrHppCalculationNotFound)
	}

	return nil
}

func (srv *hppService) build(userID uuid.UUID, input *usecase.HppInput) (*entity.HppCalculation, error) {
	if err := checkSellingPrice(input); err != nil {
		return nil, err
	}

	calc, err := finance.NewHppCalculation(userID, strings.TrimSpace(input.ProductName), finance.HppInput{
		RawMaterialCost: input.RawMaterialCost,
		LaborCost:       input.LaborCost,
		OverheadCost:    input.OverheadCost,
		TotalUnits:      input.TotalUnits,
	}, srv.now())
	if err != nil {
		return nil, fromEngineError(err)
	}

	return calc, nil
}

func checkSellingPrice(input *usecase.HppInput) error {
	if input.SellingPricePerUnit != nil && input.SellingPricePerUnit.IsNegative() {
		return validationFailed("sellingPricePerUnit", "must not be negative")
	}

	return nil
}

func (srv *hppService) publish(ctx context.Context, calc *entity.HppCalculation) {
	event := &service.LedgerEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       service.EventHppCalculated,
		UserID:     calc.UserID.String(),
		EntityID:   calc.ID.String(),
		Amount:     calc.HppPerUnit.String(),
		OccurredAt: calc.UpdatedAt,
	}

	if err := srv.publisher.PublishLedgerEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish hpp event",
			slog.String("calculation_id", calc.ID.String()),
			slog.Any("error", err),
		)
	}
}

func newHppOutput(calc *entity.HppCalculation, input *usecase.HppInput) *usecase.HppOutput {
	out := &usecase.HppOutput{Calculation: calc}
	if input.SellingPricePerUnit == nil {
		return out
	}

	price := *input.SellingPricePerUnit
	margin := finance.ProfitMarginOnPrice(price, calc.HppPerUnit)
	markup := finance.Markup(price, calc.HppPerUnit)
	out.SellingPrice = &price
	out.ProfitMargin = &margin
	out.Markup = &markup

	return out
}
