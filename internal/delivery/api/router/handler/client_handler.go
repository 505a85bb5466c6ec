package handler

import (
	"log/slog"
	"net/http"

	"veraz/internal/delivery/api/response"
	"veraz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ClientHandlerParams holds dependencies for ClientHandler, injected by Fx.
type ClientHandlerParams struct {
	fx.In

	ClientUC usecase.ClientUsecase
	Logger   *slog.Logger
}

// ClientHandler serves the debtor endpoints.
type ClientHandler struct {
	clientUC usecase.ClientUsecase
	logger   *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler.
func NewClientHandler(params ClientHandlerParams) *ClientHandler {
	return &ClientHandler{
		clientUC: params.ClientUC,
		logger:   params.Logger,
	}
}

// CreateClientRequest represents the request body of a direct client registration.
type CreateClientRequest struct {
	DNI       string  `json:"dni" validate:"max=20"`
	FirstName string  `json:"firstName" validate:"max=255"`
	LastName  string  `json:"lastName" validate:"max=255"`
	Email     *string `json:"email" validate:"omitempty,max=255"`
	Phone     *string `json:"phone" validate:"omitempty,max=50"`
}

// ListClients returns the debtors of the calling commerce.
func (h *ClientHandler) ListClients(c echo.Context) error {
	clients, err := h.clientUC.ListClients(c.Request().Context(), identity(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, clients)
}

// GetClientByDNI returns the debt history of a client across commerces.
func (h *ClientHandler) GetClientByDNI(c echo.Context) error {
	client, err := h.clientUC.GetClientByDNI(c.Request().Context(), identity(c), c.Param("dni"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, client)
}

// CreateClient rejects direct registrations once the body is valid.
func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req CreateClientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.clientUC.CreateClient(c.Request().Context(), identity(c), &usecase.CreateClientInput{
		DNI:       req.DNI,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})

	return errors.WithStack(err)
}
