package main

import (
	"field-booking/internal/handler/middleware"
	"field-booking/internal/infra/db"
	"field-booking/internal/infra/migrate"
	"field-booking/internal/pkg/config"
	"field-booking/migrations"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var useAtlas bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger := middleware.NewLogger(cfg.Log).GetSlogLogger()
			ctx := cmd.Context()

			if useAtlas {
				return migrate.AtlasApply(ctx, cfg, logger)
			}

			pool, cleanup, err := db.Connect(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := migrate.NewRunner(pool, migrations.FS, logger).Up(ctx)
			if err != nil {
				return err
			}
			logger.Info("migrations applied", "count", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&useAtlas, "atlas", false, "apply the migration directory with the atlas CLI")
	return cmd
}
