package events

import "context"

// EventsRepo abstracts event persistence.
type EventsRepo interface {
	Create(ctx context.Context, event Event) (Event, error)
	GetByID(ctx context.Context, id string) (Event, error)
	ListByRacer(ctx context.Context, racerID string) ([]Event, error)
	Update(ctx context.Context, event Event) (Event, error)
	Delete(ctx context.Context, id string) error
}
