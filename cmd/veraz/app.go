package main

import (
	"context"

	"veraz/config"
	"veraz/internal/delivery/api"
	apimiddleware "veraz/internal/delivery/api/middleware"
	"veraz/internal/delivery/api/router/handler"
	"veraz/internal/delivery/middleware"
	"veraz/internal/infra/auth"
	logs "veraz/internal/infra/log"
	"veraz/internal/infra/persistence/postgres"
	"veraz/internal/usecase/impl"

	"go.uber.org/fx"
)

// coreOptions wires everything below the delivery layer.
func coreOptions() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewClientRepository,
			postgres.NewDebtRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSessionService,
			impl.NewClientService,
			impl.NewDebtService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			middleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewUserHandler,
			handler.NewClientHandler,
			handler.NewDebtHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}
