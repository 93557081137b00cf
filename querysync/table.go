package querysync

import (
	"net/url"
	"strconv"
	"strings"
)

// Sorter is the active column sort. A zero Field means no sort.
type Sorter struct {
	Field string
	Order string
}

// TableChange is one table interaction: a page switch, a filter edit or a
// column sort. The table always reports all three together.
type TableChange struct {
	Page    int
	Filters Filters
	Sorter  *Sorter
}

// ApplyTableChange merges a table interaction into the current query. Keys
// unrelated to the table (search, preview, ...) are kept. When no sorter field
// is active both sort keys are removed.
func ApplyTableChange(current url.Values, ch TableChange) (url.Values, error) {
	next := cloneValues(current)

	page := ch.Page
	if page < 1 {
		page = DefaultPage
	}
	next.Set(KeyPage, strconv.Itoa(page))

	enc, err := EncodeFilters(ch.Filters)
	if err != nil {
		return nil, err
	}
	next.Set(KeyFilters, enc)

	if ch.Sorter != nil && ch.Sorter.Field != "" {
		next.Set(KeySortField, ch.Sorter.Field)
		next.Set(KeySortOrder, normalizeOrder(ch.Sorter.Order))
	} else {
		next.Del(KeySortField)
		next.Del(KeySortOrder)
	}
	return next, nil
}

// ApplySearch sets the free-text search term, leaving other keys untouched.
func ApplySearch(current url.Values, text string) url.Values {
	next := cloneValues(current)
	next.Set(KeySearch, strings.TrimSpace(text))
	return next
}

// Without returns a copy of the query with the given keys removed.
func Without(current url.Values, keys ...string) url.Values {
	next := cloneValues(current)
	for _, k := range keys {
		next.Del(k)
	}
	return next
}

// With returns a copy of the query with key set to value.
func With(current url.Values, key, value string) url.Values {
	next := cloneValues(current)
	next.Set(key, value)
	return next
}

// Location is the route that replaces the current one: same pathname, new query.
func Location(pathname string, q url.Values) string {
	if len(q) == 0 {
		return pathname
	}
	return pathname + "?" + q.Encode()
}

// NextOrder cycles a column sort the way table headers do:
// none -> ascend -> descend -> none.
func NextOrder(current Sorter, field string) *Sorter {
	if current.Field != field {
		return &Sorter{Field: field, Order: OrderAscend}
	}
	switch current.Order {
	case OrderAscend:
		return &Sorter{Field: field, Order: OrderDescend}
	case OrderDescend:
		return nil
	default:
		return &Sorter{Field: field, Order: OrderAscend}
	}
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
