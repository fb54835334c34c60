package store

import (
	"time"

	"lendstock.GO/core/cache"
)

// CachedStore fronts another Store with an in-process cache. Reads of a key
// hit the backend once until the key is written or removed; availability
// probes always go to the backend.
type CachedStore struct {
	backend Store
	cache   *cache.Cache
	ttl     time.Duration
}

// NewCachedStore wraps backend. A zero ttl caches until invalidation.
func NewCachedStore(backend Store, ttl time.Duration) *CachedStore {
	return &CachedStore{backend: backend, cache: cache.NewCache(), ttl: ttl}
}

func (s *CachedStore) Get(key string) (string, bool) {
	if v, ok := s.cache.Get(key); ok {
		return v, true
	}
	v, ok := s.backend.Get(key)
	if ok {
		s.cache.Set(key, v, s.ttl)
	}
	return v, ok
}

func (s *CachedStore) Set(key, value string) error {
	if err := s.backend.Set(key, value); err != nil {
		s.cache.Delete(key)
		return err
	}
	s.cache.Set(key, value, s.ttl)
	return nil
}

func (s *CachedStore) Remove(key string) error {
	s.cache.Delete(key)
	return s.backend.Remove(key)
}

func (s *CachedStore) IsAvailable() bool {
	return s.backend.IsAvailable()
}

func (s *CachedStore) ClearAll() error {
	s.cache.Flush()
	return s.backend.ClearAll()
}
