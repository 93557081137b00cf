// Package routes assembles the HTTP engine: JSON API, dashboard pages,
// health and metrics.
package routes

import (
	"net/http"

	"admin-backoffice/apiclient"
	"admin-backoffice/config"
	"admin-backoffice/dashboard"
	"admin-backoffice/flash"
	"admin-backoffice/handlers"
	"admin-backoffice/helper"
	"admin-backoffice/intents"
	"admin-backoffice/metrics"
	"admin-backoffice/middleware"
	"admin-backoffice/models"
	"admin-backoffice/repositories"
	"admin-backoffice/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func New(cfg config.AppConfig, db *gorm.DB, logger *zap.Logger, flashStore flash.Store) (*gin.Engine, error) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo)
	userService := services.NewUserService(userRepo)

	// Initialize handlers
	h := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, h)
	articleHandler := handlers.NewArticleHandler(articleService, h)
	userHandler := handlers.NewUserHandler(userService, h)

	sources := dashboard.ServiceSources(articleService, userService)
	if cfg.APIBaseURL != "" {
		client := apiclient.New(cfg.APIBaseURL, nil)
		sources = dashboard.Sources{Articles: client.Articles, Users: client.Users()}
		logger.Info("dashboard reads lists over HTTP", zap.String("api", cfg.APIBaseURL))
	}

	dash, err := dashboard.New(dashboard.Config{
		Sources:          sources,
		ArticleIntents:   intents.NewArticleEffects(articleService),
		UserIntents:      intents.NewUserEffects(userService),
		Auth:             authService,
		Flash:            flashStore,
		Logger:           logger,
		CDNRoot:          cfg.CDNRoot,
		SessionCacheSize: cfg.SessionCacheSize,
		SecureCookies:    cfg.IsProduction(),
	})
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Recovery(logger), middleware.RequestLogger(logger), middleware.CORS())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, dashboard.HomePath)
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)

			admin := protected.Group("/")
			admin.Use(middleware.RequireRole(string(models.RoleAdmin)))

			articles := admin.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
				articles.PUT("/:id/status", articleHandler.UpdateStatus)
			}

			users := admin.Group("/users")
			{
				users.GET("", userHandler.GetUsers)
				users.GET("/:id", userHandler.GetUser)
				users.DELETE("/:id", userHandler.DeleteUser)
				users.PUT("/:id/status", userHandler.UpdateStatus)
			}
		}
	}

	dash.Register(router)
	return router, nil
}
