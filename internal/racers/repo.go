package racers

import "context"

// RacersRepo abstracts racer persistence.
type RacersRepo interface {
	Create(ctx context.Context, racer Racer) (Racer, error)
	GetByID(ctx context.Context, id string) (Racer, error)
	List(ctx context.Context) ([]Racer, error)
	Update(ctx context.Context, racer Racer) (Racer, error)
	Delete(ctx context.Context, id string) error
}
