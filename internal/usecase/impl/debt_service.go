package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "veraz/internal/delivery/context"
	"veraz/internal/domain/entity"
	domainerrors "veraz/internal/domain/errors"
	"veraz/internal/domain/repository"
	"veraz/internal/usecase"

	"github.com/pkg/errors"
)

// debtService implements the DebtUsecase interface.
type debtService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewDebtService is the constructor for debtService.
func NewDebtService(txManager repository.TransactionManager, logger *slog.Logger) usecase.DebtUsecase {
	return &debtService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *debtService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateDebt registers a PENDING debt for the calling commerce. The client is
// looked up by DNI and created on first use, in the same transaction.
func (srv *debtService) CreateDebt(ctx context.Context, identity *entity.Identity, input *usecase.CreateDebtInput) (*entity.Debt, error) {
	commerceID, err := identity.RequireCommerce()
	if err != nil {
		return nil, err
	}

	clientInput := entity.ClientInput{
		DNI:       strings.TrimSpace(input.DNI),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     normalizeOptional(input.Email),
		Phone:     normalizeOptional(input.Phone),
	}
	description := strings.TrimSpace(input.Description)

	if clientInput.DNI == "" || clientInput.FirstName == "" || clientInput.LastName == "" ||
		input.Amount == nil || description == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Todos los campos del cliente y la deuda son requeridos")
	}
	if input.Amount.IsNegative() {
		return nil, domainerrors.ErrInvalidAmount
	}
	amount := input.Amount.Round(2)
	if amount.GreaterThanOrEqual(entity.MaxDebtAmount) {
		return nil, domainerrors.ErrInvalidAmount.WithDetails("amount must be below " + entity.MaxDebtAmount.String())
	}

	debt := &entity.Debt{
		Amount:      amount,
		Description: description,
		Status:      entity.DebtStatusPending,
		ComercioID:  commerceID,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		client, err := repoFactory.NewClientRepository().FindOrCreate(ctx, clientInput)
		if err != nil {
			return errors.Wrap(err, "failed to register client")
		}
		debt.ClientID = client.ID

		if err := repoFactory.NewDebtRepository().Create(ctx, debt); err != nil {
			return errors.Wrap(err, "failed to create debt")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create debt", slog.Uint64("commerce_id", uint64(commerceID)), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Debt created",
		slog.Uint64("debt_id", uint64(debt.ID)),
		slog.Uint64("client_id", uint64(debt.ClientID)),
		slog.Uint64("commerce_id", uint64(commerceID)),
	)

	return debt, nil
}

// UpdateDebtStatus sets the status of a debt owned by the calling commerce.
// Any transition between the known statuses is allowed.
func (srv *debtService) UpdateDebtStatus(ctx context.Context, identity *entity.Identity, input *usecase.UpdateDebtStatusInput) (*entity.Debt, error) {
	commerceID, err := identity.RequireCommerce()
	if err != nil {
		return nil, err
	}

	if input.Status == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("El estado es requerido")
	}
	status := entity.DebtStatus(input.Status)
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidDebtStatus
	}

	debtID, err := strconv.ParseUint(input.DebtID, 10, 0)
	if err != nil || debtID == 0 {
		return nil, domainerrors.ErrInvalidID.WithMessage("ID de deuda no válido")
	}

	var updated *entity.Debt
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		debtRepo := repoFactory.NewDebtRepository()

		debt, err := debtRepo.FindByIDForUpdate(ctx, uint(debtID))
		if err != nil {
			if errors.Is(err, repository.ErrDebtNotFound) {
				return domainerrors.ErrDebtNotFound
			}

			return errors.Wrap(err, "failed to find debt")
		}

		if !debt.IsOwnedBy(commerceID) {
			return domainerrors.ErrDebtOwnershipViolation
		}

		if err := debtRepo.UpdateStatus(ctx, debt, status); err != nil {
			return errors.Wrap(err, "failed to update debt status")
		}
		updated = debt

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDebtOwnershipViolation) {
			srv.log(ctx).Warn("Debt status change refused",
				slog.Uint64("debt_id", debtID),
				slog.Uint64("commerce_id", uint64(commerceID)),
			)
		}

		return nil, err
	}

	srv.log(ctx).Info("Debt status updated",
		slog.Uint64("debt_id", debtID),
		slog.String("status", status.String()),
	)

	return updated, nil
}
