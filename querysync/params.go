package querysync

import (
	"net/url"
	"strconv"
	"strings"

	"admin-backoffice/models"
)

// Query parameter names.
const (
	KeyPage      = "page"
	KeyPerPage   = "per"
	KeyFilters   = "filters"
	KeySortField = "sortField"
	KeySortOrder = "sortOrder"
	KeySearch    = "search"
)

// Sort orders as sent by the table.
const (
	OrderAscend  = "ascend"
	OrderDescend = "descend"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Params is everything a list fetch needs, decoded from the URL.
type Params struct {
	Page      int
	PerPage   int
	Filters   Filters
	SortField string
	SortOrder string
	Search    string
}

// ParseParams decodes list parameters. Missing or malformed page numbers fall
// back to defaults; a malformed filters value is an error.
func ParseParams(q url.Values) (Params, error) {
	p := Params{
		Page:      positiveInt(q.Get(KeyPage), DefaultPage),
		PerPage:   positiveInt(q.Get(KeyPerPage), DefaultPerPage),
		SortField: strings.TrimSpace(q.Get(KeySortField)),
		SortOrder: normalizeOrder(q.Get(KeySortOrder)),
		Search:    strings.TrimSpace(q.Get(KeySearch)),
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.SortField == "" {
		p.SortOrder = ""
	}

	filters, err := DecodeFilters(q.Get(KeyFilters))
	if err != nil {
		return p, err
	}
	p.Filters = filters
	return p, nil
}

// ListQuery converts the params into the repository query.
func (p Params) ListQuery(articleType string) models.ListQuery {
	return models.ListQuery{
		Page:      p.Page,
		PerPage:   p.PerPage,
		Filters:   p.Filters.Clone(),
		SortField: p.SortField,
		SortOrder: p.SortOrder,
		Search:    p.Search,
		Type:      articleType,
	}
}

// Values renders params back into query parameters.
func (p Params) Values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set(KeyPage, strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 && p.PerPage != DefaultPerPage {
		v.Set(KeyPerPage, strconv.Itoa(p.PerPage))
	}
	if len(p.Filters.Clone()) > 0 {
		if enc, err := EncodeFilters(p.Filters); err == nil {
			v.Set(KeyFilters, enc)
		}
	}
	if p.SortField != "" {
		v.Set(KeySortField, p.SortField)
		v.Set(KeySortOrder, p.SortOrder)
	}
	if p.Search != "" {
		v.Set(KeySearch, p.Search)
	}
	return v
}

func positiveInt(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func normalizeOrder(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case OrderAscend, "asc":
		return OrderAscend
	case OrderDescend, "desc":
		return OrderDescend
	default:
		return ""
	}
}
