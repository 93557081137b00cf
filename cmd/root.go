// Package cmd is the command line of the back office server.
package cmd

import (
	"fmt"
	"os"

	"admin-backoffice/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "backoffice",
	Short: "Admin back office for articles and users",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createAdminCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// bootstrap loads the configuration and opens the logger and database every
// command needs.
func bootstrap() (config.AppConfig, *zap.Logger, *gorm.DB, error) {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("failed to init logger: %w", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		return cfg, logger, nil, err
	}
	return cfg, logger, db, nil
}
