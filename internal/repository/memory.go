package repository

import "sync"

// memoryStore is a mutex-guarded keyed collection preserving insertion
// order. All in-memory repositories build on it; state lives for the
// lifetime of the process only.
type memoryStore[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func newMemoryStore[T any]() *memoryStore[T] {
	return &memoryStore[T]{items: make(map[string]T)}
}

func (s *memoryStore[T]) put(id string, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = v
}

func (s *memoryStore[T]) get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	return v, ok
}

func (s *memoryStore[T]) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[id]; !exists {
		return false
	}
	delete(s.items, id)
	for i, key := range s.order {
		if key == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *memoryStore[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}
