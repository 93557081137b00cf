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

const articleEntity = "articles"

func (d *Dashboard) listArticles(c *gin.Context) {
	articleType := c.Param("type")
	path := views.ArticleListPath(articleType)
	st := d.articles.Get(sessionKey(c, "articles:"+articleType))

	state := load(d.requestContext(c), c, d.logger, articleEntity, st, d.sources.Articles(articleType))

	v := views.NewArticleListView(d.layout(c, "Articles: "+articleType, path), articleType, c.Request.URL.Query(), state, d.markdown.Render)
	d.render(c, http.StatusOK, views.PageArticles, v)
}

func (d *Dashboard) searchArticles(c *gin.Context) {
	next := querysync.ApplySearch(c.Request.URL.Query(), c.PostForm(FieldSearch))
	c.Redirect(http.StatusSeeOther, querysync.Location(views.ArticleListPath(c.Param("type")), next))
}

func (d *Dashboard) changeArticleTable(c *gin.Context) {
	path := views.ArticleListPath(c.Param("type"))
	d.changeTable(c, path, presenters.ArticleColumns(nil))
}

func (d *Dashboard) confirmDeleteArticle(c *gin.Context) {
	articleType := c.Param("type")
	id, ok := parseID(c)
	if !ok {
		c.String(http.StatusNotFound, "Article not found")
		return
	}

	subject := ""
	state := d.articles.Get(sessionKey(c, "articles:"+articleType)).State()
	for _, a := range state.Data {
		if a.ID == id {
			subject = a.Title
			break
		}
	}

	v := views.ConfirmView{
		Layout:  d.layout(c, "Delete article", views.ArticleListPath(articleType)),
		Message: "Are you sure you want to delete this article?",
		Subject: subject,
		Action:  c.Request.URL.RequestURI(),
		Cancel:  querysync.Location(views.ArticleListPath(articleType), c.Request.URL.Query()),
	}
	d.render(c, http.StatusOK, views.PageConfirm, v)
}

func (d *Dashboard) deleteArticle(c *gin.Context) {
	back := querysync.Location(views.ArticleListPath(c.Param("type")), c.Request.URL.Query())
	id, ok := parseID(c)
	if !ok {
		d.notify(c, flash.LevelError, "Invalid article ID")
		c.Redirect(http.StatusSeeOther, back)
		return
	}

	d.dispatch(c, articleEntity, d.articleIntents, intents.Intent{
		Kind:    intents.Delete,
		ID:      id,
		ActorID: currentUserID(c),
	}, "Article deleted")
	c.Redirect(http.StatusSeeOther, back)
}

func (d *Dashboard) changeArticleStatus(c *gin.Context) {
	back := querysync.Location(views.ArticleListPath(c.Param("type")), c.Request.URL.Query())
	id, ok := parseID(c)
	if !ok {
		d.notify(c, flash.LevelError, "Invalid article ID")
		c.Redirect(http.StatusSeeOther, back)
		return
	}

	status := models.ArticleStatus(c.PostForm(FieldStatus))
	done := "Article status updated"
	if b := presenters.ArticleStatusBadge(status); b != nil {
		done = "Article moved to " + b.Label
	}
	d.dispatch(c, articleEntity, d.articleIntents, intents.Intent{
		Kind:    intents.ChangeStatus,
		ID:      id,
		Status:  string(status),
		ActorID: currentUserID(c),
	}, done)
	c.Redirect(http.StatusSeeOther, back)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// changeTable turns a posted table form into the next list route.
func (d *Dashboard) changeTable(c *gin.Context, path string, cols []presenters.Column) {
	page, _ := strconv.Atoi(c.PostForm(FieldPage))

	filters := querysync.Filters{}
	for _, key := range presenters.FilterKeys(cols) {
		if vals := c.PostFormArray(filterPrefix + key); len(vals) > 0 {
			filters[key] = vals
		}
	}

	var sorter *querysync.Sorter
	if field := c.PostForm(FieldSortField); field != "" {
		sorter = &querysync.Sorter{Field: field, Order: c.PostForm(FieldSortOrder)}
	}

	next, err := querysync.ApplyTableChange(c.Request.URL.Query(), querysync.TableChange{
		Page:    page,
		Filters: filters,
		Sorter:  sorter,
	})
	if err != nil {
		d.notify(c, flash.LevelError, err.Error())
		c.Redirect(http.StatusSeeOther, querysync.Location(path, c.Request.URL.Query()))
		return
	}
	c.Redirect(http.StatusSeeOther, querysync.Location(path, next))
}
