package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces application keys inside a shared redis instance.
const keyPrefix = "lendstock:"

// RedisStore is the alternate backend for deployments that already run
// redis. Values never expire; the store owns them until removed.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func rkey(key string) string { return keyPrefix + key }

func (s *RedisStore) ctx() context.Context { return context.Background() }

func (s *RedisStore) Get(key string) (string, bool) {
	v, err := s.rdb.Get(s.ctx(), rkey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *RedisStore) Set(key, value string) error {
	return s.rdb.Set(s.ctx(), rkey(key), value, 0).Err()
}

func (s *RedisStore) Remove(key string) error {
	return s.rdb.Del(s.ctx(), rkey(key)).Err()
}

func (s *RedisStore) IsAvailable() bool {
	ctx, cancel := context.WithTimeout(s.ctx(), 2*time.Second)
	defer cancel()
	return s.rdb.Ping(ctx).Err() == nil
}

func (s *RedisStore) ClearAll() error {
	keys := make([]string, len(AppKeys))
	for i, k := range AppKeys {
		keys[i] = rkey(k)
	}
	return s.rdb.Del(s.ctx(), keys...).Err()
}
