// Package dashboard serves the server-rendered admin pages. Every table
// interaction posts a form, is turned into a new query string and redirected
// to, so the URL stays the only source of list state.
package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"admin-backoffice/apiclient"
	"admin-backoffice/config"
	"admin-backoffice/flash"
	"admin-backoffice/intents"
	"admin-backoffice/markup"
	"admin-backoffice/metrics"
	"admin-backoffice/middleware"
	"admin-backoffice/models"
	"admin-backoffice/querysync"
	"admin-backoffice/services"
	"admin-backoffice/store"
	"admin-backoffice/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Form fields posted by the table controls.
const (
	FieldPage      = "page"
	FieldSortField = "sortField"
	FieldSortOrder = "sortOrder"
	FieldSearch    = "search"
	FieldStatus    = "status"
	filterPrefix   = "filter."
)

const HomePath = "/admin/articles/news"

type Config struct {
	Sources        Sources
	ArticleIntents intents.Handler
	UserIntents    intents.Handler
	Auth           services.AuthService
	Flash          flash.Store
	Logger         *zap.Logger
	CDNRoot        string
	// SessionCacheSize bounds the number of list stores kept per entity.
	SessionCacheSize int
	SecureCookies    bool
}

type Dashboard struct {
	sources        Sources
	articleIntents intents.Handler
	userIntents    intents.Handler
	auth           services.AuthService
	flash          flash.Store
	logger         *zap.Logger
	cdnRoot        string
	secureCookies  bool

	articles *store.Registry[models.Article]
	users    *store.Registry[models.User]
	views    *views.Renderer
	markdown *markup.Renderer
}

func New(cfg Config) (*Dashboard, error) {
	if cfg.SessionCacheSize <= 0 {
		cfg.SessionCacheSize = 256
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Flash == nil {
		cfg.Flash = flash.NewMemoryStore()
	}

	articles, err := store.NewRegistry[models.Article](cfg.SessionCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create article stores: %w", err)
	}
	users, err := store.NewRegistry[models.User](cfg.SessionCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create user stores: %w", err)
	}
	renderer, err := views.New()
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		sources:        cfg.Sources,
		articleIntents: cfg.ArticleIntents,
		userIntents:    cfg.UserIntents,
		auth:           cfg.Auth,
		flash:          cfg.Flash,
		logger:         cfg.Logger,
		cdnRoot:        cfg.CDNRoot,
		secureCookies:  cfg.SecureCookies,
		articles:       articles,
		users:          users,
		views:          renderer,
		markdown:       markup.NewRenderer(),
	}, nil
}

// Register mounts the login pages and the authenticated admin routes.
func (d *Dashboard) Register(r gin.IRouter) {
	r.GET(middleware.LoginPath, d.loginPage)
	r.POST(middleware.LoginPath, d.login)
	r.POST("/admin/logout", d.logout)

	admin := r.Group("/admin")
	admin.Use(middleware.PageAuthMiddleware(), middleware.RequireRole(string(models.RoleAdmin)))
	{
		admin.GET("", func(c *gin.Context) { c.Redirect(http.StatusSeeOther, HomePath) })

		admin.GET("/articles/:type", d.listArticles)
		admin.POST("/articles/:type/search", d.searchArticles)
		admin.POST("/articles/:type/table", d.changeArticleTable)
		admin.GET("/articles/:type/delete/:id", d.confirmDeleteArticle)
		admin.POST("/articles/:type/delete/:id", d.deleteArticle)
		admin.POST("/articles/:type/status/:id", d.changeArticleStatus)

		admin.GET("/users/list", d.listUsers)
		admin.POST("/users/list/search", d.searchUsers)
		admin.POST("/users/list/table", d.changeUserTable)
		admin.GET("/users/delete/:id", d.confirmDeleteUser)
		admin.POST("/users/delete/:id", d.deleteUser)
	}
}

// requestContext forwards the signed-in token to sources that call the API.
func (d *Dashboard) requestContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if token, err := c.Cookie(config.JWTCookieName); err == nil {
		ctx = apiclient.WithToken(ctx, token)
	}
	return ctx
}

func sessionKey(c *gin.Context, scope string) string {
	return fmt.Sprintf("%d:%s", c.GetUint("user_id"), scope)
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

func (d *Dashboard) layout(c *gin.Context, title, active string) views.Layout {
	l := views.Layout{
		Title:    title,
		Username: c.GetString("username"),
		Nav:      views.Navigation(active),
	}
	msg, ok, err := d.flash.Pop(c.Request.Context(), flash.SessionKey(c))
	if err != nil {
		d.logger.Warn("failed to read flash message", zap.Error(err))
	} else if ok {
		l.Flash = &msg
	}
	return l
}

func (d *Dashboard) notify(c *gin.Context, level flash.Level, text string) {
	if err := d.flash.Set(c.Request.Context(), flash.SessionKey(c), flash.Message{Level: level, Text: text}); err != nil {
		d.logger.Warn("failed to store flash message", zap.Error(err))
	}
}

func (d *Dashboard) render(c *gin.Context, status int, page string, data any) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := d.views.Render(c.Writer, page, data); err != nil {
		d.logger.Error("failed to render page", zap.String("page", page), zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to render page")
	}
}

// load runs one fetch cycle for the current query. A query that cannot be
// decoded is recorded as an errored request and nothing is fetched.
func load[R any](ctx context.Context, c *gin.Context, logger *zap.Logger, entity string, st *store.Store[R], src store.Source[R]) store.State[R] {
	params, err := querysync.ParseParams(c.Request.URL.Query())
	if err != nil {
		metrics.RecordListFetch(entity, time.Now(), err)
		return store.Reject(st, params, err)
	}

	started := time.Now()
	state, err := store.Fetch(ctx, st, params, src)
	metrics.RecordListFetch(entity, started, err)
	if err != nil {
		logger.Warn("list fetch failed", zap.String("entity", entity), zap.Error(err))
	}
	return state
}

// dispatch performs an intent and reports its outcome on the next page.
func (d *Dashboard) dispatch(c *gin.Context, entity string, h intents.Handler, in intents.Intent, done string) {
	err := h.Handle(c.Request.Context(), in)
	metrics.RecordIntent(entity, in.Kind.String(), err)
	if err != nil {
		d.logger.Warn("intent failed", zap.String("entity", entity), zap.Stringer("intent", in), zap.Error(err))
		d.notify(c, flash.LevelError, err.Error())
		return
	}
	d.notify(c, flash.LevelInfo, done)
}
