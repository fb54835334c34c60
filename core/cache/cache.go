package cache

import (
	"sync"
	"time"
)

// Cache is a thread-safe string-keyed value cache backed by sync.Map.
// It fronts the persistent store: collection reads hit it first, every
// write invalidates the key.
type Cache struct {
	m sync.Map
}

func NewCache() *Cache {
	return &Cache{}
}

// cacheItem holds a value and its expiration time.
type cacheItem struct {
	Value     string
	ExpiresAt int64 // Unix nanoseconds; 0 means no expiration
}

// Set stores a value with an optional TTL. A zero TTL never expires.
func (c *Cache) Set(key, value string, ttl time.Duration) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).UnixNano()
	}
	c.m.Store(key, cacheItem{Value: value, ExpiresAt: expiresAt})
}

// Get returns (value, true) if present and not expired. Expired entries
// are removed on read.
func (c *Cache) Get(key string) (string, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return "", false
	}
	item := v.(cacheItem)
	if item.ExpiresAt > 0 && time.Now().UnixNano() > item.ExpiresAt {
		c.m.Delete(key)
		return "", false
	}
	return item.Value, true
}

// Delete removes a key.
func (c *Cache) Delete(key string) {
	c.m.Delete(key)
}

// DeleteMany removes multiple keys.
func (c *Cache) DeleteMany(keys ...string) {
	for _, key := range keys {
		c.m.Delete(key)
	}
}

// Flush drops every entry.
func (c *Cache) Flush() {
	c.m.Range(func(key, _ interface{}) bool {
		c.m.Delete(key)
		return true
	})
}
