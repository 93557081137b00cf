// Package intents carries mutation requests from the list views to the
// handlers that perform them.
package intents

import (
	"context"
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	Delete
	ChangeStatus
)

func (k Kind) String() string {
	switch k {
	case Delete:
		return "delete"
	case ChangeStatus:
		return "change_status"
	default:
		return "unknown"
	}
}

var ErrUnknownIntent = errors.New("unknown intent")

// Intent names one mutation of one record.
type Intent struct {
	Kind   Kind
	ID     uint
	Status string
	// ActorID is the signed-in user that asked for the change.
	ActorID uint
}

func (i Intent) String() string {
	if i.Kind == ChangeStatus {
		return fmt.Sprintf("%s(%d, %s)", i.Kind, i.ID, i.Status)
	}
	return fmt.Sprintf("%s(%d)", i.Kind, i.ID)
}

type Handler interface {
	Handle(ctx context.Context, in Intent) error
}

type HandlerFunc func(ctx context.Context, in Intent) error

func (f HandlerFunc) Handle(ctx context.Context, in Intent) error {
	return f(ctx, in)
}
