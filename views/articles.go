package views

import (
	"html/template"
	"net/url"
	"strconv"

	"admin-backoffice/models"
	"admin-backoffice/presenters"
	"admin-backoffice/querysync"
	"admin-backoffice/store"
)

// KeyPreview selects the article shown in the preview modal.
const KeyPreview = "preview"

// CreateNewsPath is the editor route behind the "create news" button.
const CreateNewsPath = "/admin/articles/create"

type ArticleRow struct {
	models.Article
	Badge      *presenters.Badge
	Actions    []presenters.Action
	StatusURL  string
	DeleteURL  string
	PreviewURL string
}

type ArticleListView struct {
	Layout
	Type         string
	CanCreate    bool
	CreateURL    string
	SearchAction string
	TableAction  string
	Search       string
	Sort         querysync.Sorter
	Columns      []HeaderCell
	Rows         []ArticleRow
	Pager        Pager
	Loading      bool
	FetchError   string

	PreviewOpen     bool
	Preview         *models.Article
	PreviewHTML     template.HTML
	PreviewCloseURL string
}

// MarkdownFunc renders article content for the preview modal.
type MarkdownFunc func(src string) (template.HTML, error)

func ArticleListPath(articleType string) string {
	return "/admin/articles/" + url.PathEscape(articleType)
}

// NewArticleListView builds the article page. The preview modal opens when
// the query names a record of the current page.
func NewArticleListView(layout Layout, articleType string, query url.Values, st store.State[models.Article], render MarkdownFunc) ArticleListView {
	path := ArticleListPath(articleType)
	// the preview flag is view state; interaction links must not carry it
	t := TableFrom(path, querysync.Without(query, KeyPreview), st)

	v := ArticleListView{
		Layout:       layout,
		Type:         articleType,
		CanCreate:    articleType == "news",
		CreateURL:    CreateNewsPath,
		SearchAction: t.Action("/search"),
		TableAction:  t.Action("/table"),
		Search:       st.Search,
		Sort:         t.Sorter,
		Columns:      t.Headers(presenters.ArticleColumns(st.Filters)),
		Pager:        t.Pager(),
		Loading:      st.WaitFetch,
		FetchError:   st.FetchErrors,
	}

	for _, a := range st.Data {
		id := strconv.FormatUint(uint64(a.ID), 10)
		v.Rows = append(v.Rows, ArticleRow{
			Article:    a,
			Badge:      presenters.ArticleStatusBadge(a.Status),
			Actions:    presenters.ArticleActions(a),
			StatusURL:  t.Action("/status/" + id),
			DeleteURL:  t.Action("/delete/" + id),
			PreviewURL: querysync.Location(path, querysync.With(t.Query, KeyPreview, id)),
		})
	}

	if raw := query.Get(KeyPreview); raw != "" {
		for i := range st.Data {
			if strconv.FormatUint(uint64(st.Data[i].ID), 10) != raw {
				continue
			}
			active := st.Data[i]
			v.PreviewOpen = true
			v.Preview = &active
			v.PreviewCloseURL = t.Self()
			if render != nil {
				if html, err := render(active.Content); err == nil {
					v.PreviewHTML = html
				}
			}
			break
		}
	}
	return v
}
