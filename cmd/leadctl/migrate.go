package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lead-gateway/pkg/config"
	"lead-gateway/pkg/logger"
	"lead-gateway/pkg/store"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema to DATABASE_URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			if cfg.DatabaseURL == "" {
				return errors.New("DATABASE_URL is required")
			}

			pg, err := store.NewPostgresStore(cmd.Context(), cfg.DatabaseURL, logger.New(cfg.Debug))
			if err != nil {
				return err
			}
			defer pg.Close()

			if err := pg.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
