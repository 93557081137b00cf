package dashboard

import (
	"net/http"
	"strconv"

	"admin-backoffice/flash"
	"admin-backoffice/intents"
	"admin-backoffice/models"
	"admin-backoffice/presenters"
	"admin-backoffice/querysync"
	"admin-backoffice/views"

	"github.com/gin-gonic/gin"
)

const userEntity = "users"

func (d *Dashboard) listUsers(c *gin.Context) {
	st := d.users.Get(sessionKey(c, userEntity))
	state := load(d.requestContext(c), c, d.logger, userEntity, st, d.sources.Users)

	v := views.NewUserListView(d.layout(c, "Users", views.UserListPath), c.Request.URL.Query(), state, d.cdnRoot)
	d.render(c, http.StatusOK, views.PageUsers, v)
}

func (d *Dashboard) searchUsers(c *gin.Context) {
	next := querysync.ApplySearch(c.Request.URL.Query(), c.PostForm(FieldSearch))
	c.Redirect(http.StatusSeeOther, querysync.Location(views.UserListPath, next))
}

func (d *Dashboard) changeUserTable(c *gin.Context) {
	d.changeTable(c, views.UserListPath, presenters.UserColumns(nil))
}

func findUser(users []models.User, id uint) *models.User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

func (d *Dashboard) confirmDeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.String(http.StatusNotFound, "User not found")
		return
	}

	subject := "User #" + strconv.FormatUint(uint64(id), 10)
	if u := findUser(d.users.Get(sessionKey(c, userEntity)).State().Data, id); u != nil {
		subject = u.Name()
	}

	v := views.ConfirmView{
		Layout:  d.layout(c, "Delete user", views.UserListPath),
		Message: "Are you sure you want to delete this user?",
		Subject: subject,
		Action:  c.Request.URL.RequestURI(),
		Cancel:  querysync.Location(views.UserListPath, c.Request.URL.Query()),
	}
	d.render(c, http.StatusOK, views.PageConfirm, v)
}

// deleteUser redirects back to the list with the query the delete was
// started from.
func (d *Dashboard) deleteUser(c *gin.Context) {
	back := querysync.Location(views.UserListPath, c.Request.URL.Query())
	id, ok := parseID(c)
	if !ok {
		d.notify(c, flash.LevelError, "Invalid user ID")
		c.Redirect(http.StatusSeeOther, back)
		return
	}

	d.dispatch(c, userEntity, d.userIntents, intents.Intent{
		Kind:    intents.Delete,
		ID:      id,
		ActorID: currentUserID(c),
	}, "User deleted")
	c.Redirect(http.StatusSeeOther, back)
}
