package localstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used in tests and single-node dev runs.
// Values are round-tripped through JSON so it behaves like the Redis store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
	expiry  map[string]time.Time
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]byte),
		expiry:  make(map[string]time.Time),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string, dest any) error {
	s.mu.RLock()
	data, ok := s.entries[key]
	exp, hasExp := s.expiry[key]
	s.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	if hasExp && time.Now().After(exp) {
		s.mu.Lock()
		delete(s.entries, key)
		delete(s.expiry, key)
		s.mu.Unlock()
		return ErrNotFound
	}
	return json.Unmarshal(data, dest)
}

func (s *MemoryStore) Set(ctx context.Context, key string, val any) error {
	return s.SetTTL(ctx, key, val, 0)
}

func (s *MemoryStore) SetTTL(ctx context.Context, key string, val any, ttl time.Duration) error {
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = data
	if ttl > 0 {
		s.expiry[key] = time.Now().Add(ttl)
	} else {
		delete(s.expiry, key)
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	delete(s.expiry, key)
	return nil
}

// Migrate is a no-op: a fresh in-memory store has nothing to upgrade.
func (s *MemoryStore) Migrate(ctx context.Context) error {
	return nil
}
