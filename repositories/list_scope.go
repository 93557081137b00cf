package repositories

import (
	"fmt"
	"strconv"
	"strings"

	"admin-backoffice/models"

	"gorm.io/gorm"
)

// listScope describes which query keys a table accepts.
type listScope struct {
	table        string
	filterCols   map[string]string // filter key -> column
	intFilters   map[string]bool   // filter keys compared as integers
	sortCols     map[string]string // sortField -> column
	defaultSort  string
	searchFields []string
}

func (s listScope) applyFilters(query *gorm.DB, filters map[string][]string) (*gorm.DB, error) {
	for key, values := range filters {
		col, ok := s.filterCols[key]
		if !ok || len(values) == 0 {
			continue
		}
		if s.intFilters[key] {
			ints := make([]int, 0, len(values))
			for _, v := range values {
				n, err := strconv.Atoi(v)
				if err != nil {
					return nil, fmt.Errorf("filter %s: invalid value %q", key, v)
				}
				ints = append(ints, n)
			}
			query = query.Where(fmt.Sprintf("%s.%s IN ?", s.table, col), ints)
			continue
		}
		query = query.Where(fmt.Sprintf("%s.%s IN ?", s.table, col), values)
	}
	return query, nil
}

func (s listScope) applySearch(query *gorm.DB, search string) *gorm.DB {
	search = strings.TrimSpace(search)
	if search == "" || len(s.searchFields) == 0 {
		return query
	}
	like := "%" + strings.ToLower(search) + "%"
	clauses := make([]string, 0, len(s.searchFields))
	args := make([]interface{}, 0, len(s.searchFields))
	for _, f := range s.searchFields {
		clauses = append(clauses, fmt.Sprintf("LOWER(%s.%s) LIKE ?", s.table, f))
		args = append(args, like)
	}
	return query.Where(strings.Join(clauses, " OR "), args...)
}

// order maps the table's sortField/sortOrder onto an ORDER BY clause. Unknown
// fields fall back to the default so user input never reaches the SQL text.
func (s listScope) order(q models.ListQuery) string {
	col, ok := s.sortCols[q.SortField]
	if !ok {
		return fmt.Sprintf("%s.%s", s.table, s.defaultSort)
	}
	dir := "desc"
	if q.SortOrder == "ascend" {
		dir = "asc"
	}
	return fmt.Sprintf("%s.%s %s", s.table, col, dir)
}

func (s listScope) apply(query *gorm.DB, q models.ListQuery) (*gorm.DB, error) {
	query, err := s.applyFilters(query, q.Filters)
	if err != nil {
		return nil, err
	}
	return s.applySearch(query, q.Search), nil
}
