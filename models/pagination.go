package models

type PagingLinks struct {
	Previous string `json:"previous"`
	Next     string `json:"next"`
	First    string `json:"first"`
	Last     string `json:"last"`
}

// Pagination is the "meta" block of every list response.
type Pagination struct {
	CurrentPage int         `json:"current_page"`
	PerPage     int         `json:"per_page,omitempty"`
	Total       int64       `json:"total"`
	TotalPages  int         `json:"total_pages,omitempty"`
	Links       PagingLinks `json:"links"`
}

type ArticleListResponse struct {
	Meta     Pagination `json:"meta"`
	Articles []Article  `json:"articles"`
}

type UserListResponse struct {
	Meta  Pagination `json:"meta"`
	Users []User     `json:"users"`
}

// FailureResponse is returned by list endpoints instead of a payload.
type FailureResponse struct {
	Message string `json:"message"`
}
