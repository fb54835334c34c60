package config

import (
	"os"
	"time"

	"lendstock.GO/store"
)

// NewStore picks the configured backend: redis when REDIS_ADDR is set and
// reachable, the local sqlite file otherwise. Unless STORE_CACHE=off, the
// backend is fronted by an in-process read cache.
func NewStore() (store.Store, error) {
	var backend store.Store
	if RedisClient != nil && RedisClient.Ping(RedisCtx()).Err() == nil {
		backend = store.NewRedisStore(RedisClient)
	} else {
		db, err := NewDB()
		if err != nil {
			return nil, err
		}
		backend, err = store.NewGormStore(db)
		if err != nil {
			return nil, err
		}
	}
	if os.Getenv("STORE_CACHE") == "off" {
		return backend, nil
	}
	return store.NewCachedStore(backend, 5*time.Minute), nil
}
