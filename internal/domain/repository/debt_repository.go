package repository

import (
	"context"
	"errors"

	"veraz/internal/domain/entity"
)

// ErrDebtNotFound is returned when no debt matches the lookup.
var ErrDebtNotFound = errors.New("debt not found")

// DebtRepository defines the persistence operations on debts.
type DebtRepository interface {
	// Create persists a new debt. ID and timestamps are written back.
	Create(ctx context.Context, debt *entity.Debt) error

	// FindByIDForUpdate loads a debt and locks its row until the surrounding
	// transaction ends.
	FindByIDForUpdate(ctx context.Context, id uint) (*entity.Debt, error)

	// UpdateStatus sets the status of a debt.
	UpdateStatus(ctx context.Context, debt *entity.Debt, status entity.DebtStatus) error
}
