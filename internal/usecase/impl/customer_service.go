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

type customerService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	Logger       *slog.Logger
}

// NewCustomerService creates the customer use case.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		logger:       params.Logger,
	}
}

func (srv *customerService) CreateCustomer(ctx context.Context, userID uuid.UUID, input *usecase.CustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		ID:     uuid.New(),
		UserID: userID,
	}
	if err := applyCustomerInput(customer, input); err != nil {
		return nil, err
	}

	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	return customer, nil
}

func (srv *customerService) GetCustomer(ctx context.Context, userID, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.WithStack(domainerrors.ErrCustomerNotFound)
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

func (srv *customerService) ListCustomers(ctx context.Context, userID uuid.UUID) ([]*entity.Customer, error) {
	customers, err := srv.customerRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

func (srv *customerService) UpdateCustomer(
	ctx context.Context,
	userID, customerID uuid.UUID,
	patch *usecase.CustomerPatch,
) (*entity.Customer, error) {
	customer, err := srv.GetCustomer(ctx, userID, customerID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, validationFailed("name", "is required")
		}
		customer.Name = name
	}
	patchText(&customer.Email, patch.Email)
	patchText(&customer.Phone, patch.Phone)
	patchText(&customer.Address, patch.Address)

	if err := srv.customerRepo.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.WithStack(domainerrors.ErrCustomerNotFound)
		}

		return nil, errors.Wrap(err, "failed to update customer")
	}

	return customer, nil
}

// DeleteCustomer detaches the customer from the owner's transactions in the same DB transaction.
func (srv *customerService) DeleteCustomer(ctx context.Context, userID, customerID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deleted, err := repoFactory.NewCustomerRepository().Delete(ctx, customerID, userID)
		if err != nil {
			return errors.Wrap(err, "failed to delete customer")
		}
		if !deleted {
			return errors.WithStack(domainerrors.ErrCustomerNotFound)
		}

		if err := repoFactory.NewLedgerRepository().DetachCustomer(ctx, userID, customerID); err != nil {
			return errors.Wrap(err, "failed to detach customer from transactions")
		}

		return nil
	})
	if err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Customer deleted",
		slog.String("userID", userID.String()),
		slog.String("customerID", customerID.String()),
	)

	return nil
}

func applyCustomerInput(customer *entity.Customer, input *usecase.CustomerInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return validationFailed("name", "is required")
	}

	customer.Name = name
	customer.Email = strings.TrimSpace(input.Email)
	customer.Phone = strings.TrimSpace(input.Phone)
	customer.Address = strings.TrimSpace(input.Address)

	return nil
}

func patchText(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}
