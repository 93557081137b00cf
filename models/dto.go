package models

type RegisterRequest struct {
	Username    string   `json:"username" form:"username" binding:"required,min=3,max=50"`
	Email       string   `json:"email" form:"email" binding:"required,email"`
	Password    string   `json:"password" form:"password" binding:"required,min=6"`
	DisplayName string   `json:"display_name" form:"display_name"`
	Nickname    string   `json:"nickname" form:"nickname"`
	Role        UserRole `json:"role,omitempty" form:"role"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=255"`
	Type    string `json:"type" validate:"omitempty,alphanum,max=32"`
	Content string `json:"content" validate:"required"`
}

type UpdateArticleStatusRequest struct {
	Status ArticleStatus `json:"status" form:"status" validate:"required,oneof=recycle draft publish pinned"`
}

type UpdateUserStatusRequest struct {
	Status UserStatus `json:"status" form:"status" validate:"required,oneof=train retire"`
}

// ListQuery is the decoded form of the list query string shared by the
// dashboard and the JSON API.
type ListQuery struct {
	Page      int
	PerPage   int
	Filters   map[string][]string
	SortField string
	SortOrder string
	Search    string
	// Type narrows articles to one route category. Ignored for users.
	Type string
}

func (q ListQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.PerPage
}
