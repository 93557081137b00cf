// Package views renders the dashboard pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"admin-backoffice/flash"
)

//go:embed templates/*.html
var files embed.FS

const (
	PageLogin    = "login"
	PageArticles = "articles"
	PageUsers    = "users"
	PageConfirm  = "confirm"
)

var funcs = template.FuncMap{
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04")
	},
}

// Layout is the part of every page rendered by the shared layout.
type Layout struct {
	Title    string
	Username string
	Flash    *flash.Message
	Nav      []NavItem
}

type NavItem struct {
	Label  string
	URL    string
	Active bool
}

// Navigation is the sidebar of the signed-in dashboard.
func Navigation(active string) []NavItem {
	items := []NavItem{
		{Label: "News", URL: "/admin/articles/news"},
		{Label: "Articles", URL: "/admin/articles/article"},
		{Label: "Users", URL: "/admin/users/list"},
	}
	for i := range items {
		items[i].Active = items[i].URL == active
	}
	return items
}

type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{PageLogin, PageArticles, PageUsers, PageConfirm} {
		t, err := template.New(name).Funcs(funcs).ParseFS(files,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s templates: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes page into w. Output is buffered so a template error never
// leaves a half-written page.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
