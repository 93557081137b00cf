// Package store holds per-entity list state: the fetched page of records,
// pagination, active query and fetch status. State only changes through
// Reduce.
package store

import (
	"admin-backoffice/models"
	"admin-backoffice/querysync"
)

// Kind tags an action. The set is closed; anything else is ignored.
type Kind int

const (
	KindUnknown Kind = iota
	FetchRequest
	FetchSuccess
	FetchFailure
)

func (k Kind) String() string {
	switch k {
	case FetchRequest:
		return "fetch_request"
	case FetchSuccess:
		return "fetch_success"
	case FetchFailure:
		return "fetch_failure"
	default:
		return "unknown"
	}
}

// Payload carries the fields an action may need.
type Payload[R any] struct {
	Meta    models.Pagination
	Records []R
	Message string
	Query   querysync.Params
}

type Action[R any] struct {
	Kind Kind
	// Error marks a request that failed before it was sent.
	Error   bool
	Payload Payload[R]
	// Generation ties a completion to the request that started it. Zero means
	// untracked.
	Generation uint64
}

type State[R any] struct {
	Data        []R
	PageSize    int
	Pagination  models.Pagination
	Filters     querysync.Filters
	SortField   string
	SortOrder   string
	Search      string
	WaitFetch   bool
	FetchErrors string
}

// InitialState is the state before the first fetch.
func InitialState[R any]() State[R] {
	return State[R]{
		Data:       []R{},
		PageSize:   querysync.DefaultPerPage,
		Pagination: models.Pagination{CurrentPage: 1},
		Filters:    querysync.Filters{},
	}
}

// HasError reports whether the last fetch failed.
func (s State[R]) HasError() bool {
	return s.FetchErrors != ""
}

// Reduce returns the state after applying action. It never mutates s.
func Reduce[R any](s State[R], a Action[R]) State[R] {
	switch a.Kind {
	case FetchRequest:
		next := s
		next.WaitFetch = !a.Error
		if a.Error {
			next.FetchErrors = a.Payload.Message
		} else {
			next.FetchErrors = ""
		}
		q := a.Payload.Query
		if q.PerPage > 0 {
			next.PageSize = q.PerPage
		}
		next.Filters = q.Filters.Clone()
		next.SortField = q.SortField
		next.SortOrder = q.SortOrder
		next.Search = q.Search
		return next
	case FetchSuccess:
		next := s
		next.Pagination = a.Payload.Meta
		next.Data = a.Payload.Records
		if next.Data == nil {
			next.Data = []R{}
		}
		next.WaitFetch = false
		next.FetchErrors = ""
		return next
	case FetchFailure:
		next := s
		next.WaitFetch = false
		next.FetchErrors = a.Payload.Message
		return next
	default:
		return s
	}
}
