package usecase

import (
	"context"

	"veraz/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateDebtInput defines a debt registration along with its debtor.
type CreateDebtInput struct {
	DNI         string
	FirstName   string
	LastName    string
	Email       *string
	Phone       *string
	Amount      *decimal.Decimal
	Description string
}

// UpdateDebtStatusInput defines a status change. DebtID is the raw path value.
type UpdateDebtStatusInput struct {
	DebtID string
	Status string
}

// DebtUsecase defines the commerce operations on debts.
type DebtUsecase interface {
	CreateDebt(ctx context.Context, identity *entity.Identity, input *CreateDebtInput) (*entity.Debt, error)
	UpdateDebtStatus(ctx context.Context, identity *entity.Identity, input *UpdateDebtStatusInput) (*entity.Debt, error)
}
