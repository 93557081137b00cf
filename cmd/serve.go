package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"admin-backoffice/config"
	"admin-backoffice/flash"
	"admin-backoffice/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API and dashboard server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, db, err := bootstrap()
		if logger != nil {
			defer logger.Sync()
		}
		if err != nil {
			return err
		}

		if migrateOnStart {
			if err := config.Migrate(db); err != nil {
				return err
			}
		}
		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var flashStore flash.Store = flash.NewMemoryStore()
		if cfg.RedisAddr != "" {
			rs, err := flash.NewRedisStore(ctx, cfg.RedisAddr)
			if err != nil {
				return err
			}
			defer rs.Close()
			flashStore = rs
		}

		router, err := routes.New(cfg, db, logger, flashStore)
		if err != nil {
			return err
		}

		srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}
		go func() {
			logger.Info("Server starting", zap.String("port", cfg.Port))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Server stopped", zap.Error(err))
				stop()
			}
		}()

		<-ctx.Done()
		logger.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Run database migrations before serving")
}
