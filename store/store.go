package store

import (
	"encoding/json"
	"errors"
)

// Application keys. Every collection is one JSON blob under one key.
const (
	KeyInventory     = "inventory"
	KeyCategories    = "categories"
	KeySuppliers     = "suppliers"
	KeySettings      = "settings"
	KeyBorrows       = "borrows"
	KeyHistory       = "history"
	KeyNotifications = "notifications"
	KeyCurrentUser   = "currentUser"
	KeyRoleAccess    = "roleAccess"
)

// AppKeys lists every key owned by the application, in ClearAll order.
var AppKeys = []string{
	KeyInventory,
	KeyCategories,
	KeySuppliers,
	KeySettings,
	KeyBorrows,
	KeyHistory,
	KeyNotifications,
	KeyCurrentUser,
	KeyRoleAccess,
}

// ErrUnavailable is returned by mutating operations when the backing store
// fails its availability probe. Callers refuse the operation instead of
// persisting partially.
var ErrUnavailable = errors.New("store unavailable")

// Store is the persistence substrate: string keys, JSON string values.
type Store interface {
	// Get returns the raw value and whether the key exists.
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
	// IsAvailable probes the store with a throwaway write.
	IsAvailable() bool
	// ClearAll removes every application key.
	ClearAll() error
}

// Load reads and unmarshals the value under key. Missing or corrupt JSON
// yields def — callers always get a usable value, never an error.
func Load[T any](s Store, key string, def T) T {
	raw, ok := s.Get(key)
	if !ok {
		return def
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return def
	}
	return out
}

// Save marshals v and writes it under key.
func Save[T any](s Store, key string, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, string(b))
}
