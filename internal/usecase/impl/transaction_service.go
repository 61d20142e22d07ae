package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bookkeeper/config"
	deliverycontext "bookkeeper/internal/delivery/context"
	"bookkeeper/internal/domain/entity"
	domainerrors "bookkeeper/internal/domain/errors"
	"bookkeeper/internal/domain/repository"
	"bookkeeper/internal/domain/service"
	"bookkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxListLimit = 500

type transactionService struct {
	ledgerRepo   repository.LedgerRepository
	categoryRepo repository.CategoryRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
	publisher    service.EventPublisher
	qrService    service.QRCodeService
	maxLimit     int
	now          func() time.Time
	logger       *slog.Logger
}

// TransactionServiceParams holds dependencies for TransactionService, injected by Fx.
type TransactionServiceParams struct {
	fx.In

	LedgerRepo   repository.LedgerRepository
	CategoryRepo repository.CategoryRepository
	CustomerRepo repository.CustomerRepository
	UserRepo     repository.UserRepository
	Publisher    service.EventPublisher
	QRService    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewTransactionService creates the ledger use case.
func NewTransactionService(params TransactionServiceParams) usecase.TransactionUsecase {
	maxLimit := defaultMaxListLimit
	if params.Config != nil && params.Config.Ledger != nil && params.Config.Ledger.MaxListLimit > 0 {
		maxLimit = params.Config.Ledger.MaxListLimit
	}

	return &transactionService{
		ledgerRepo:   params.LedgerRepo,
		categoryRepo: params.CategoryRepo,
		customerRepo: params.CustomerRepo,
		userRepo:     params.UserRepo,
		publisher:    params.Publisher,
		qrService:    params.QRService,
		maxLimit:     maxLimit,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *transactionService) CreateTransaction(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.TransactionInput,
) (*entity.Transaction, error) {
	occurredAt := input.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = srv.now()
	}

	tx := &entity.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        input.Kind,
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
		OccurredAt:  occurredAt,
		CategoryID:  input.CategoryID,
		CustomerID:  input.CustomerID,
	}
	if err := srv.checkTransaction(ctx, tx); err != nil {
		return nil, err
	}

	if err := srv.ledgerRepo.Create(ctx, tx); err != nil {
		return nil, errors.Wrap(err, "failed to create transaction")
	}

	srv.publish(ctx, service.EventTransactionCreated, tx)

	return tx, nil
}

func (srv *transactionService) GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*entity.Transaction, error) {
	tx, err := srv.ledgerRepo.FindByID(ctx, transactionID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, errors.WithStack(domainerrors.ErrTransactionNotFound)
		}

		return nil, errors.Wrap(err, "failed to find transaction")
	}

	return tx, nil
}

func (srv *transactionService) ListTransactions(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.ListTransactionsInput,
) ([]*entity.Transaction, error) {
	if !input.Start.IsZero() && !input.End.IsZero() && !input.End.After(input.Start) {
		return nil, validationFailed("end", "must be after start")
	}
	if input.Kind != "" && !input.Kind.IsValid() {
		return nil, validationFailed("kind", "must be income or expense")
	}
	if input.Limit < 0 {
		return nil, validationFailed("limit", "must not be negative")
	}

	limit := input.Limit
	if limit == 0 || limit > srv.maxLimit {
		limit = srv.maxLimit
	}

	txs, err := srv.ledgerRepo.ListByOwner(ctx, userID, repository.TransactionFilter{
		Start: input.Start,
		End:   input.End,
		Kind:  input.Kind,
		Limit: limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return txs, nil
}

func (srv *transactionService) UpdateTransaction(
	ctx context.Context,
	userID, transactionID uuid.UUID,
	patch *usecase.TransactionPatch,
) (*entity.Transaction, error) {
	tx, err := srv.GetTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	if patch.Kind != nil {
		tx.Kind = *patch.Kind
	}
	if patch.Amount != nil {
		tx.Amount = *patch.Amount
	}
	if patch.Description != nil {
		tx.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.OccurredAt != nil {
		tx.OccurredAt = *patch.OccurredAt
	}
	patch.CategoryID.Apply(&tx.CategoryID)
	patch.CustomerID.Apply(&tx.CustomerID)

	// A kind change must still agree with the kept category.
	if err := srv.checkTransaction(ctx, tx); err != nil {
		return nil, err
	}

	if err := srv.ledgerRepo.Update(ctx, tx); err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, errors.WithStack(domainerrors.ErrTransactionNotFound)
		}

		return nil, errors.Wrap(err, "failed to update transaction")
	}

	srv.publish(ctx, service.EventTransactionUpdated, tx)

	return tx, nil
}

func (srv *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error {
	tx, err := srv.GetTransaction(ctx, userID, transactionID)
	if err != nil {
		return err
	}

	deleted, err := srv.ledgerRepo.Delete(ctx, transactionID, userID)
	if err != nil {
		return errors.Wrap(err, "failed to delete transaction")
	}
	if !deleted {
		return errors.WithStack(domainerrors.ErrTransactionNotFound)
	}

	srv.publish(ctx, service.EventTransactionDeleted, tx)

	return nil
}

func (srv *transactionService) ReceiptQR(ctx context.Context, userID, transactionID uuid.UUID) ([]byte, error) {
	tx, err := srv.GetTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	png, err := srv.qrService.GenerateReceiptQR(&service.ReceiptData{
		TransactionID: tx.ID,
		Business:      user.DisplayBusinessName(),
		Kind:          tx.Kind.String(),
		Amount:        tx.Amount.String(),
		Description:   tx.Description,
		OccurredAt:    tx.OccurredAt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt QR code")
	}

	return png, nil
}

// checkTransaction validates tx against the owner's categories and customers.
func (srv *transactionService) checkTransaction(ctx context.Context, tx *entity.Transaction) error {
	if !tx.Kind.IsValid() {
		return validationFailed("kind", "must be income or expense")
	}
	if !tx.Amount.IsPositive() {
		return validationFailed("amount", "must be greater than zero")
	}
	if !tx.Amount.InRange() {
		return validationFailed("amount", "exceeds the largest storable amount")
	}
	if tx.Description == "" {
		return validationFailed("description", "is required")
	}

	if tx.CategoryID != nil {
		category, err := srv.categoryRepo.FindByID(ctx, *tx.CategoryID, tx.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return validationFailed("categoryId", "does not exist")
			}

			return errors.Wrap(err, "failed to find category")
		}
		if category.Kind != tx.Kind {
			return validationFailed("categoryId", "belongs to a different kind")
		}
	}

	if tx.CustomerID != nil {
		if _, err := srv.customerRepo.FindByID(ctx, *tx.CustomerID, tx.UserID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return validationFailed("customerId", "does not exist")
			}

			return errors.Wrap(err, "failed to find customer")
		}
	}

	return nil
}

// publish sends a ledger event. The write has already succeeded, so failures are only logged.
func (srv *transactionService) publish(ctx context.Context, eventType string, tx *entity.Transaction) {
	event := &service.LedgerEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		UserID:     tx.UserID.String(),
		EntityID:   tx.ID.String(),
		Kind:       tx.Kind.String(),
		Amount:     tx.Amount.String(),
		OccurredAt: tx.OccurredAt,
	}

	if err := srv.publisher.PublishLedgerEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish ledger event",
			slog.String("event_type", eventType),
			slog.String("transaction_id", tx.ID.String()),
			slog.Any("error", err),
		)
	}
}
