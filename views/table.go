package views

import (
	"net/url"

	"admin-backoffice/models"
	"admin-backoffice/presenters"
	"admin-backoffice/querysync"
	"admin-backoffice/store"
)

// pagerWindow is how many page links are shown either side of the current one.
const pagerWindow = 2

// Table holds what a list page needs to compute its interaction URLs.
type Table struct {
	Path       string
	Query      url.Values
	Filters    querysync.Filters
	Sorter     querysync.Sorter
	Pagination models.Pagination
	PageSize   int
}

// TableFrom binds a list route to the store state rendered on it.
func TableFrom[R any](path string, query url.Values, st store.State[R]) Table {
	return Table{
		Path:       path,
		Query:      query,
		Filters:    st.Filters,
		Sorter:     querysync.Sorter{Field: st.SortField, Order: st.SortOrder},
		Pagination: st.Pagination,
		PageSize:   st.PageSize,
	}
}

func (t Table) page() int {
	if t.Pagination.CurrentPage < 1 {
		return 1
	}
	return t.Pagination.CurrentPage
}

func (t Table) sorter() *querysync.Sorter {
	if t.Sorter.Field == "" {
		return nil
	}
	s := t.Sorter
	return &s
}

// URL is the route a table change leads to.
func (t Table) URL(ch querysync.TableChange) string {
	next, err := querysync.ApplyTableChange(t.Query, ch)
	if err != nil {
		return t.Path
	}
	return querysync.Location(t.Path, next)
}

// Action is a sub-route of the list that carries the current query along.
func (t Table) Action(suffix string) string {
	return querysync.Location(t.Path+suffix, t.Query)
}

// Self is the list route with its current query.
func (t Table) Self() string {
	return querysync.Location(t.Path, t.Query)
}

// HeaderCell is a column header with its sort link precomputed.
type HeaderCell struct {
	presenters.Column
	SortURL   string
	SortOrder string
}

func (t Table) Headers(cols []presenters.Column) []HeaderCell {
	cells := make([]HeaderCell, 0, len(cols))
	for _, col := range cols {
		cell := HeaderCell{Column: col}
		if col.Sortable {
			cell.SortURL = t.URL(querysync.TableChange{
				Page:    t.page(),
				Filters: t.Filters,
				Sorter:  querysync.NextOrder(t.Sorter, col.Key),
			})
			if t.Sorter.Field == col.Key {
				cell.SortOrder = t.Sorter.Order
			}
		}
		cells = append(cells, cell)
	}
	return cells
}

type PageLink struct {
	Number int
	URL    string
	Active bool
}

type Pager struct {
	Links      []PageLink
	Prev       string
	Next       string
	Total      int64
	TotalPages int
}

func (t Table) Pager() Pager {
	total := t.Pagination.TotalPages
	if total == 0 && t.PageSize > 0 {
		total = int((t.Pagination.Total + int64(t.PageSize) - 1) / int64(t.PageSize))
	}
	cur := t.page()
	p := Pager{Total: t.Pagination.Total, TotalPages: total}
	if total == 0 {
		return p
	}

	link := func(n int) string {
		return t.URL(querysync.TableChange{Page: n, Filters: t.Filters, Sorter: t.sorter()})
	}
	lo, hi := cur-pagerWindow, cur+pagerWindow
	if lo < 1 {
		lo = 1
	}
	if hi > total {
		hi = total
	}
	for n := lo; n <= hi; n++ {
		p.Links = append(p.Links, PageLink{Number: n, URL: link(n), Active: n == cur})
	}
	if cur > 1 {
		p.Prev = link(cur - 1)
	}
	if cur < total {
		p.Next = link(cur + 1)
	}
	return p
}
