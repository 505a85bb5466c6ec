package middleware

import (
	"strings"

	deliverycontext "veraz/internal/delivery/context"
	"veraz/internal/domain/entity"
	domainerrors "veraz/internal/domain/errors"
	"veraz/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the session token for browser clients.
const SessionCookieName = "veraz_session"

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for session authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate resolves the session token into the caller identity.
// The Authorization header takes precedence over the session cookie.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := sessionToken(c)
		if tokenString == "" {
			return domainerrors.ErrUnauthenticated
		}

		identity, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || !identity.IsAuthenticated() {
			return domainerrors.ErrUnauthenticated.WithDetails("invalid or expired session")
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the caller has the given role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if !identity.IsAuthenticated() {
				return domainerrors.ErrUnauthenticated
			}
			if identity.Role != requiredRole {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

func sessionToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}
