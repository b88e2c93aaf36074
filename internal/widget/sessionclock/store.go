package sessionclock

import "sync"

// Store is the per-visitor persistence handle the session clock writes its
// window starts through. Implementations are expected to be cheap and may
// fail (quota, unavailable backend); the clock degrades instead of
// propagating those failures.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MemoryStore is a non-persisted Store. It backs tests and the degraded mode
// used when the real store is unavailable: the countdown still works, just
// without cross-visit continuity.
type MemoryStore struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}
