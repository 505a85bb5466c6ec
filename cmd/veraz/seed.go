package main

import (
	"context"
	"log/slog"

	"veraz/config"
	"veraz/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type seedParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	UserUC usecase.UserUsecase
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the bootstrap administrator if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				coreOptions(),
				fx.NopLogger,
				fx.Invoke(registerSeed),
			)
			if err := app.Err(); err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if err := app.Start(ctx); err != nil {
				return err
			}

			return app.Stop(ctx)
		},
	}
}

// registerSeed runs the bootstrap once the database connection is verified.
func registerSeed(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			seed := params.Config.Seed
			if seed == nil {
				return errors.New("seed configuration is missing")
			}

			out, err := params.UserUC.BootstrapAdmin(ctx, &usecase.BootstrapAdminInput{
				Email:    seed.AdminEmail,
				Name:     seed.AdminName,
				Password: seed.AdminPassword,
			})
			if err != nil {
				return errors.Wrap(err, "bootstrap administrator")
			}

			params.Logger.Info("Seed completed",
				slog.String("email", out.User.Email),
				slog.Bool("created", out.Created),
			)

			return nil
		},
	})
}
