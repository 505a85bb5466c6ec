package handler

import (
	"log/slog"
	"net/http"

	"veraz/internal/delivery/api/response"
	"veraz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// DebtHandlerParams holds dependencies for DebtHandler, injected by Fx.
type DebtHandlerParams struct {
	fx.In

	DebtUC usecase.DebtUsecase
	Logger *slog.Logger
}

// DebtHandler serves the debt endpoints of commerces.
type DebtHandler struct {
	debtUC usecase.DebtUsecase
	logger *slog.Logger
}

// NewDebtHandler is the constructor for DebtHandler.
func NewDebtHandler(params DebtHandlerParams) *DebtHandler {
	return &DebtHandler{
		debtUC: params.DebtUC,
		logger: params.Logger,
	}
}

// CreateDebtRequest represents the request body for registering a debt.
// The amount is accepted as a JSON number or a numeric string.
type CreateDebtRequest struct {
	DNI         string           `json:"dni" validate:"max=20"`
	FirstName   string           `json:"firstName" validate:"max=255"`
	LastName    string           `json:"lastName" validate:"max=255"`
	Email       *string          `json:"email" validate:"omitempty,max=255"`
	Phone       *string          `json:"phone" validate:"omitempty,max=50"`
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description"`
}

// UpdateDebtStatusRequest represents the request body for a status change.
type UpdateDebtStatusRequest struct {
	Status string `json:"status"`
}

// CreateDebt registers a debt for the calling commerce.
func (h *DebtHandler) CreateDebt(c echo.Context) error {
	var req CreateDebtRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	debt, err := h.debtUC.CreateDebt(c.Request().Context(), identity(c), &usecase.CreateDebtInput{
		DNI:         req.DNI,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, debt)
}

// UpdateDebtStatus changes the status of a debt owned by the calling commerce.
func (h *DebtHandler) UpdateDebtStatus(c echo.Context) error {
	var req UpdateDebtStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	debt, err := h.debtUC.UpdateDebtStatus(c.Request().Context(), identity(c), &usecase.UpdateDebtStatusInput{
		DebtID: c.Param("id"),
		Status: req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, debt)
}
