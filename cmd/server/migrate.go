package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fugu-chop/todo-db/internal/platform/config"
	"github.com/fugu-chop/todo-db/internal/platform/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		if cfg.Database.Driver != config.DriverPostgres {
			return fmt.Errorf("migrate needs the %s driver, profile %q uses %s",
				config.DriverPostgres, profile, cfg.Database.Driver)
		}
		return database.Migrate(cmd.Context(), cfg.Database, logger)
	},
}
