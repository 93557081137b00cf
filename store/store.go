package store

import (
	"context"
	"sync"

	"admin-backoffice/querysync"
)

// Source fetches one page of records for a query.
type Source[R any] interface {
	List(ctx context.Context, q querysync.Params) (Payload[R], error)
}

// SourceFunc adapts a function to Source.
type SourceFunc[R any] func(ctx context.Context, q querysync.Params) (Payload[R], error)

func (f SourceFunc[R]) List(ctx context.Context, q querysync.Params) (Payload[R], error) {
	return f(ctx, q)
}

// Store serializes dispatches onto one State. Completions tagged with a
// generation older than the latest Begin are dropped, so a slow response
// cannot overwrite a newer one.
type Store[R any] struct {
	mu         sync.Mutex
	state      State[R]
	generation uint64
}

func New[R any]() *Store[R] {
	return &Store[R]{state: InitialState[R]()}
}

// State returns a snapshot of the current state.
func (s *Store[R]) State() State[R] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies an action and returns the resulting state.
func (s *Store[R]) Dispatch(a Action[R]) State[R] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.Generation != 0 {
		switch a.Kind {
		case FetchRequest:
			if a.Generation > s.generation {
				s.generation = a.Generation
			}
		case FetchSuccess, FetchFailure:
			if a.Generation < s.generation {
				return s.state
			}
		}
	}

	s.state = Reduce(s.state, a)
	return s.state
}

// Begin dispatches a tracked FetchRequest and returns its generation.
func (s *Store[R]) Begin(q querysync.Params) uint64 {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state = Reduce(s.state, Action[R]{Kind: FetchRequest, Payload: Payload[R]{Query: q}, Generation: gen})
	s.mu.Unlock()
	return gen
}

// Fetch runs one request lifecycle against src and returns the state after it
// completes. The returned error is the fetch failure, already recorded in the
// state.
func Fetch[R any](ctx context.Context, s *Store[R], q querysync.Params, src Source[R]) (State[R], error) {
	gen := s.Begin(q)

	payload, err := src.List(ctx, q)
	if err != nil {
		return s.Dispatch(Action[R]{
			Kind:       FetchFailure,
			Payload:    Payload[R]{Message: err.Error()},
			Generation: gen,
		}), err
	}
	return s.Dispatch(Action[R]{Kind: FetchSuccess, Payload: payload, Generation: gen}), nil
}

// Reject records a request that failed validation before it could be sent,
// such as an undecodable query string.
func Reject[R any](s *Store[R], q querysync.Params, err error) State[R] {
	return s.Dispatch(Action[R]{
		Kind:    FetchRequest,
		Error:   true,
		Payload: Payload[R]{Message: err.Error(), Query: q},
	})
}
