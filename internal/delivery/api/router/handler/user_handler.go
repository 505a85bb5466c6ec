package handler

import (
	"log/slog"
	"net/http"

	"veraz/internal/delivery/api/response"
	"veraz/internal/domain/entity"
	"veraz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the administrator account endpoints.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CreateUserRequest represents the request body for creating an account.
type CreateUserRequest struct {
	Email    string  `json:"email" validate:"omitempty,email,max=255"`
	Name     string  `json:"name" validate:"max=255"`
	Password string  `json:"password" validate:"max=72"`
	Role     string  `json:"role"`
	Cuit     *string `json:"cuit" validate:"omitempty,max=20"`
}

// UpdateUserRequest represents the request body for updating an account. Omitted fields are kept.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Password *string `json:"password" validate:"omitempty,max=72"`
	Role     *string `json:"role"`
	Cuit     *string `json:"cuit" validate:"omitempty,max=20"`
}

// ListUsers returns every account.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context(), identity(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users)
}

// GetUser returns one account.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), identity(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// CreateUser registers an account.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), identity(c), &usecase.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		Cuit:     req.Cuit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// UpdateUser applies the supplied fields to an account.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	update := entity.UserUpdate{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Cuit:     req.Cuit,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		update.Role = &role
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), identity(c), id, update)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// DeleteUser removes an account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), identity(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
