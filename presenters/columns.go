package presenters

import (
	"admin-backoffice/querysync"
)

type FilterOption struct {
	Text  string
	Value string
}

// Column is the configuration of one table column.
type Column struct {
	Title         string
	Key           string
	Width         string
	Sortable      bool
	Filters       []FilterOption
	FilteredValue []string
	ClassName     string
}

// Filterable reports whether the column shows a filter dropdown.
func (c Column) Filterable() bool {
	return len(c.Filters) > 0
}

// Selected reports whether value is part of the column's active filter.
func (c Column) Selected(value string) bool {
	for _, v := range c.FilteredValue {
		if v == value {
			return true
		}
	}
	return false
}

func ArticleColumns(filters querysync.Filters) []Column {
	return []Column{
		{Title: "Title", Key: "title", Width: "20%", Sortable: true},
		{Title: "Status", Key: "status", Width: "10%", Filters: ArticleStatusFilters(), FilteredValue: filters.Get("status")},
		{Title: "Author", Key: "user.name", Width: "8%"},
		{Title: "Updated", Key: "updated_at", Width: "18%", Sortable: true},
		{Title: "Created", Key: "created_at", Width: "18%", Sortable: true},
		{Title: "Operation", Key: "operation"},
	}
}

func UserColumns(filters querysync.Filters) []Column {
	return []Column{
		{Title: "Avatar", Key: "avatar", Width: "70px"},
		{Title: "Name", Key: "display_name", Width: "100px", Sortable: true, ClassName: "text-center"},
		{Title: "Gender", Key: "gender", Width: "60px", ClassName: "text-center", Filters: GenderFilters(), FilteredValue: filters.Get("gender")},
		{Title: "Role", Key: "role", Width: "90px", Filters: UserRoleFilters(), FilteredValue: filters.Get("role")},
		{Title: "Status", Key: "status", Width: "90px", Filters: UserStatusFilters(), FilteredValue: filters.Get("status")},
		{Title: "Email", Key: "user_info", Width: "15%"},
		{Title: "School / Major / Grade", Key: "student_info", Width: "18%"},
		{Title: "Created", Key: "created_at", Sortable: true},
		{Title: "Operation", Key: "operation"},
	}
}

// FilterKeys lists the columns that carry filters.
func FilterKeys(cols []Column) []string {
	keys := make([]string, 0, len(cols))
	for _, c := range cols {
		if c.Filterable() {
			keys = append(keys, c.Key)
		}
	}
	return keys
}
