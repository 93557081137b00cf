package cmd

import (
	"admin-backoffice/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, db, err := bootstrap()
		if logger != nil {
			defer logger.Sync()
		}
		if err != nil {
			return err
		}

		if err := config.Migrate(db); err != nil {
			return err
		}
		logger.Info("Migration complete")
		return nil
	},
}
