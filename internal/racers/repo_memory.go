package racers

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory RacersRepo used for local development and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	racers map[string]Racer
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{racers: make(map[string]Racer)}
}

func (m *MemoryRepo) Create(ctx context.Context, racer Racer) (Racer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.racers[racer.ID] = racer
	return racer, nil
}

func (m *MemoryRepo) GetByID(ctx context.Context, id string) (Racer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	racer, ok := m.racers[id]
	if !ok {
		return Racer{}, ErrNotFound
	}
	return racer, nil
}

func (m *MemoryRepo) List(ctx context.Context) ([]Racer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Racer, 0, len(m.racers))
	for _, racer := range m.racers {
		out = append(out, racer)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryRepo) Update(ctx context.Context, racer Racer) (Racer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.racers[racer.ID]; !ok {
		return Racer{}, ErrNotFound
	}
	m.racers[racer.ID] = racer
	return racer, nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.racers[id]; !ok {
		return ErrNotFound
	}
	delete(m.racers, id)
	return nil
}
