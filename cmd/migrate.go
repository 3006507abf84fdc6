package cmd

import (
	"fmt"

	"economy-manager/core/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates every table.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		models := allModels()
		if err := database.Migrate(rt.db, models...); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
		rt.logger.Info("Schema migrated", zap.Int("tables", len(models)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
