package main

import (
	"context"
	"log/slog"

	"field-booking/cmd/bootstrap"
	"field-booking/cmd/bootstrap/components"
	"field-booking/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newSweepHoldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep-holds",
		Short: "Expire overdue holds once and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				holds  commands.HoldCommands
				logger *slog.Logger
			)
			app := fx.New(
				bootstrap.ConfigModule,
				bootstrap.DBModule,
				bootstrap.LoggerModule,
				components.PersistenceModule,
				components.UseCaseModule,
				fx.Populate(&holds, &logger),
				fx.NopLogger,
			)
			if err := app.Start(cmd.Context()); err != nil {
				return err
			}
			defer func() {
				if err := app.Stop(context.Background()); err != nil {
					slog.Error("failed to stop application", "error", err)
				}
			}()

			n, err := holds.SweepExpired(cmd.Context())
			if err != nil {
				return err
			}
			logger.Info("expired holds swept", "count", n)
			return nil
		},
	}
}
