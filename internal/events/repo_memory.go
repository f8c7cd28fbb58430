package events

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory EventsRepo used for local development and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	events map[string]Event
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{events: make(map[string]Event)}
}

func (m *MemoryRepo) Create(ctx context.Context, event Event) (Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[event.ID] = event
	return event, nil
}

func (m *MemoryRepo) GetByID(ctx context.Context, id string) (Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	event, ok := m.events[id]
	if !ok {
		return Event{}, ErrNotFound
	}
	return event, nil
}

func (m *MemoryRepo) ListByRacer(ctx context.Context, racerID string) ([]Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Event, 0)
	for _, event := range m.events {
		if event.RacerID == racerID {
			out = append(out, event)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EventDate.Before(out[j].EventDate)
	})
	return out, nil
}

func (m *MemoryRepo) Update(ctx context.Context, event Event) (Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[event.ID]; !ok {
		return Event{}, ErrNotFound
	}
	m.events[event.ID] = event
	return event, nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[id]; !ok {
		return ErrNotFound
	}
	delete(m.events, id)
	return nil
}

// DeleteByRacer removes every event belonging to a racer. SQL repositories
// get this behavior from the schema's ON DELETE CASCADE.
func (m *MemoryRepo) DeleteByRacer(ctx context.Context, racerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, event := range m.events {
		if event.RacerID == racerID {
			delete(m.events, id)
		}
	}
	return nil
}
