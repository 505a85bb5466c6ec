// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	deliverycontext "veraz/internal/delivery/context"
	"veraz/internal/domain/entity"
	domainerrors "veraz/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var errInvalidBody = domainerrors.ErrValidationFailed.WithMessage("Cuerpo de la solicitud no válido")

// bindAndValidate decodes the request body into req and checks its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errInvalidBody.WithDetails(err.Error())
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrInvalidID
	}

	return uint(id), nil
}

// identity returns the caller resolved by the auth middleware.
func identity(c echo.Context) *entity.Identity {
	return deliverycontext.GetIdentity(c)
}
