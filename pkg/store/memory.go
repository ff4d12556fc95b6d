package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps charts in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	charts map[string]Chart
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{charts: make(map[string]Chart)}
}

func (s *MemoryStore) Save(ctx context.Context, c *Chart) error {
	if err := ValidateID(c.ID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.charts[c.ID] = *c
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.charts[id]
	if !ok {
		return nil, notFound(id)
	}
	return &c, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]*Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Chart, 0, len(s.charts))
	for _, c := range s.charts {
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.charts[id]; !ok {
		return notFound(id)
	}
	delete(s.charts, id)
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
