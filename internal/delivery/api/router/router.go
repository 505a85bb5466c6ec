// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"veraz/internal/delivery/api/middleware"
	"veraz/internal/delivery/api/router/handler"
	deliverymiddleware "veraz/internal/delivery/middleware"
	"veraz/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	UserHandler       *handler.UserHandler
	ClientHandler     *handler.ClientHandler
	DebtHandler       *handler.DebtHandler
	HealthHandler     *handler.HealthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	MetricsMiddleware *deliverymiddleware.MetricsMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	userHandler       *handler.UserHandler
	clientHandler     *handler.ClientHandler
	debtHandler       *handler.DebtHandler
	healthHandler     *handler.HealthHandler
	authMiddleware    *middleware.AuthMiddleware
	metricsMiddleware *deliverymiddleware.MetricsMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		userHandler:       params.UserHandler,
		clientHandler:     params.ClientHandler,
		debtHandler:       params.DebtHandler,
		healthHandler:     params.HealthHandler,
		authMiddleware:    params.AuthMiddleware,
		metricsMiddleware: params.MetricsMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check and metrics endpoints
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metricsMiddleware.Handler()))

	api := e.Group("/api")

	// Session routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/logout", r.sessionHandler.Logout)
		authGroup.GET("/me", r.sessionHandler.Me, r.authMiddleware.Authenticate)
	}

	// Account management, administrators only
	usersGroup := api.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	usersGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	// Client lookups; the history by DNI is open to every signed-in role
	clientsGroup := api.Group("/clients")
	clientsGroup.Use(r.authMiddleware.Authenticate)
	{
		requireCommerce := r.authMiddleware.RequireRole(entity.RoleCommerce)
		clientsGroup.GET("", r.clientHandler.ListClients, requireCommerce)
		clientsGroup.POST("", r.clientHandler.CreateClient, requireCommerce)
		clientsGroup.GET("/:dni", r.clientHandler.GetClientByDNI)
	}

	// Debt management, commerces only
	debtsGroup := api.Group("/debts")
	debtsGroup.Use(r.authMiddleware.Authenticate)
	debtsGroup.Use(r.authMiddleware.RequireRole(entity.RoleCommerce))
	{
		debtsGroup.POST("", r.debtHandler.CreateDebt)
		debtsGroup.PUT("/:id", r.debtHandler.UpdateDebtStatus)
	}
}
