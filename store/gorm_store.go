package store

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const kvTable = "kv_entries"

// KVEntry is one key of the store, persisted as a JSON blob row.
type KVEntry struct {
	Key       string         `gorm:"primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string { return kvTable }

// GormStore keeps the key-value data in a single sqlite table. It is the
// durable, single-user backend (the local data file).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(key string) (string, bool) {
	var e KVEntry
	err := s.db.First(&e, "key = ?", key).Error
	if err != nil {
		return "", false
	}
	return string(e.Value), true
}

func (s *GormStore) Set(key, value string) error {
	e := KVEntry{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

func (s *GormStore) Remove(key string) error {
	return s.db.Delete(&KVEntry{}, "key = ?", key).Error
}

// IsAvailable writes and removes a probe row, mirroring how the store's
// capacity problems surface (quota, locked file, closed handle).
func (s *GormStore) IsAvailable() bool {
	const probe = "__probe__"
	if err := s.Set(probe, `"ok"`); err != nil {
		return false
	}
	if err := s.Remove(probe); err != nil {
		return false
	}
	return true
}

func (s *GormStore) ClearAll() error {
	err := s.db.Delete(&KVEntry{}, "key IN ?", AppKeys).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
