package views

import (
	"net/url"
	"strconv"

	"admin-backoffice/models"
	"admin-backoffice/presenters"
	"admin-backoffice/querysync"
	"admin-backoffice/store"
)

const UserListPath = "/admin/users/list"

type UserRow struct {
	models.User
	AvatarURL   string
	Gender      string
	RoleTag     *presenters.Tag
	StatusTag   *presenters.Tag
	StudentInfo string
	DeleteURL   string
}

type UserListView struct {
	Layout
	SearchAction      string
	SearchPlaceholder string
	TableAction       string
	Sort              querysync.Sorter
	Columns           []HeaderCell
	Rows              []UserRow
	Pager             Pager
	Loading           bool
	FetchError        string
}

func NewUserListView(layout Layout, query url.Values, st store.State[models.User], cdnRoot string) UserListView {
	t := TableFrom(UserListPath, query, st)

	placeholder := st.Search
	if placeholder == "" {
		placeholder = "Search"
	}

	v := UserListView{
		Layout:            layout,
		SearchAction:      t.Action("/search"),
		SearchPlaceholder: placeholder,
		TableAction:       t.Action("/table"),
		Sort:              t.Sorter,
		Columns:           t.Headers(presenters.UserColumns(st.Filters)),
		Pager:             t.Pager(),
		Loading:           st.WaitFetch,
		FetchError:        st.FetchErrors,
	}
	for _, u := range st.Data {
		v.Rows = append(v.Rows, UserRow{
			User:        u,
			AvatarURL:   presenters.AvatarURL(cdnRoot, u.Avatar.Thumb),
			Gender:      presenters.GenderLabel(u.Gender),
			RoleTag:     presenters.UserRoleTag(u.Role),
			StatusTag:   presenters.UserStatusTag(u.Status),
			StudentInfo: presenters.StudentInfo(u.UserInfo),
			DeleteURL:   querysync.Location("/admin/users/delete/"+strconv.FormatUint(uint64(u.ID), 10), query),
		})
	}
	return v
}
