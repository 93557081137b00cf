package dashboard

import (
	"errors"
	"net/http"

	"admin-backoffice/config"
	"admin-backoffice/middleware"
	"admin-backoffice/models"
	"admin-backoffice/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (d *Dashboard) loginPage(c *gin.Context) {
	d.render(c, http.StatusOK, views.PageLogin, views.LoginView{Layout: views.Layout{Title: "Sign in"}})
}

func (d *Dashboard) login(c *gin.Context) {
	req := models.LoginRequest{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}
	fail := func(status int, msg string) {
		d.render(c, status, views.PageLogin, views.LoginView{
			Layout:   views.Layout{Title: "Sign in"},
			Username: req.Username,
			Error:    msg,
		})
	}

	if req.Username == "" || req.Password == "" {
		fail(http.StatusBadRequest, "Username and password are required")
		return
	}

	resp, err := d.auth.Login(req)
	if err != nil {
		var unauthorized models.ErrorUnauthorized
		if errors.As(err, &unauthorized) {
			fail(http.StatusUnauthorized, unauthorized.Message)
			return
		}
		d.logger.Error("login failed", zap.String("username", req.Username), zap.Error(err))
		fail(http.StatusInternalServerError, "Login failed")
		return
	}
	if resp.User.Role != models.RoleAdmin {
		fail(http.StatusForbidden, "Administrator account required")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.JWTCookieName, resp.Token, int(config.JWTExpiration.Seconds()), "/", "", d.secureCookies, true)
	c.Redirect(http.StatusSeeOther, HomePath)
}

func (d *Dashboard) logout(c *gin.Context) {
	c.SetCookie(config.JWTCookieName, "", -1, "/", "", d.secureCookies, true)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}
