package cmd

import (
	"errors"

	"admin-backoffice/models"
	"admin-backoffice/repositories"
	"admin-backoffice/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var admin models.RegisterRequest

// createAdminCmd is the only way to grant the admin role; public
// registration always creates students.
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if admin.Username == "" || admin.Email == "" || len(admin.Password) < 6 {
			return errors.New("--username, --email and a --password of at least 6 characters are required")
		}

		_, logger, db, err := bootstrap()
		if logger != nil {
			defer logger.Sync()
		}
		if err != nil {
			return err
		}

		req := admin
		req.Role = models.RoleAdmin
		resp, err := services.NewAuthService(repositories.NewUserRepository(db)).Register(req)
		if err != nil {
			return err
		}
		logger.Info("Administrator created", zap.Uint("id", resp.User.ID), zap.String("username", resp.User.Username))
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&admin.Username, "username", "", "Login name")
	createAdminCmd.Flags().StringVar(&admin.Email, "email", "", "Email address")
	createAdminCmd.Flags().StringVar(&admin.Password, "password", "", "Password")
	createAdminCmd.Flags().StringVar(&admin.DisplayName, "display-name", "", "Display name, defaults to the username")
}
