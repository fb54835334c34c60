package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"

	"lendstock.GO/model/entity"
	"lendstock.GO/store"
)

var (
	ErrInvalidDocument = errors.New("invalid backup document")
)

// Document is the single-file export of every collection plus settings.
// roleAccess travels opaquely; the engine never interprets it.
type Document struct {
	Inventory     []entity.Item               `json:"inventory"`
	Categories    []entity.Category           `json:"categories"`
	Suppliers     []entity.Supplier           `json:"suppliers"`
	Settings      entity.Settings             `json:"settings"`
	Borrows       []entity.BorrowRecord       `json:"borrows"`
	History       []entity.HistoryRecord      `json:"history"`
	Notifications []entity.NotificationRecord `json:"notifications"`
	RoleAccess    json.RawMessage             `json:"roleAccess,omitempty"`
}

// Service serializes and restores the whole store.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Export snapshots every collection into one document.
func (s *Service) Export() Document {
	doc := Document{
		Inventory:     store.Load(s.store, store.KeyInventory, []entity.Item{}),
		Categories:    store.Load(s.store, store.KeyCategories, []entity.Category{}),
		Suppliers:     store.Load(s.store, store.KeySuppliers, []entity.Supplier{}),
		Settings:      store.Load(s.store, store.KeySettings, entity.DefaultSettings()),
		Borrows:       store.Load(s.store, store.KeyBorrows, []entity.BorrowRecord{}),
		History:       store.Load(s.store, store.KeyHistory, []entity.HistoryRecord{}),
		Notifications: store.Load(s.store, store.KeyNotifications, []entity.NotificationRecord{}),
	}
	if raw, ok := s.store.Get(store.KeyRoleAccess); ok {
		doc.RoleAccess = json.RawMessage(raw)
	}
	return doc
}

// ExportJSON writes the document as indented JSON.
func (s *Service) ExportJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Export())
}

// requiredArrays maps document keys that must be present as JSON arrays.
var requiredArrays = []string{"inventory", "categories", "suppliers", "borrows", "history", "notifications"}

// Import validates the raw document fully before touching the store: every
// collection must be present and array-shaped, settings must be an object.
// Partial or invalid documents are rejected with nothing applied.
func (s *Service) Import(raw []byte) error {
	var top map[string]interface{}
	if err := json.Unmarshal(raw, &top); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	for _, key := range requiredArrays {
		v, ok := top[key]
		if !ok {
			return fmt.Errorf("%w: missing %q", ErrInvalidDocument, key)
		}
		if _, isArr := v.([]interface{}); !isArr {
			return fmt.Errorf("%w: %q is not an array", ErrInvalidDocument, key)
		}
	}
	if v, ok := top["settings"]; !ok {
		return fmt.Errorf("%w: missing \"settings\"", ErrInvalidDocument)
	} else if _, isObj := v.(map[string]interface{}); !isObj {
		return fmt.Errorf("%w: \"settings\" is not an object", ErrInvalidDocument)
	}

	// roleAccess travels opaquely and is re-marshalled below, never decoded
	// into the document struct.
	roleAccess, hasRoleAccess := top["roleAccess"]
	delete(top, "roleAccess")

	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &doc,
		TagName:    "json",
		DecodeHook: importDecodeHook,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(top); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if !s.store.IsAvailable() {
		return store.ErrUnavailable
	}
	if err := store.Save(s.store, store.KeyInventory, doc.Inventory); err != nil {
		return err
	}
	if err := store.Save(s.store, store.KeyCategories, doc.Categories); err != nil {
		return err
	}
	if err := store.Save(s.store, store.KeySuppliers, doc.Suppliers); err != nil {
		return err
	}
	if err := store.Save(s.store, store.KeySettings, doc.Settings); err != nil {
		return err
	}
	if err := store.Save(s.store, store.KeyBorrows, doc.Borrows); err != nil {
		return err
	}
	if err := store.Save(s.store, store.KeyHistory, doc.History); err != nil {
		return err
	}
	if err := store.Save(s.store, store.KeyNotifications, doc.Notifications); err != nil {
		return err
	}
	if hasRoleAccess {
		b, err := json.Marshal(roleAccess)
		if err == nil {
			if err := s.store.Set(store.KeyRoleAccess, string(b)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Clear wipes every application key.
func (s *Service) Clear() error {
	if !s.store.IsAvailable() {
		return store.ErrUnavailable
	}
	return s.store.ClearAll()
}

// importDecodeHook converts the JSON-decoded scalars into the entity field
// types: RFC3339 strings to time.Time, strings/numbers to decimal.Decimal.
var importDecodeHook = mapstructure.ComposeDecodeHookFunc(
	mapstructure.StringToTimeHookFunc(time.RFC3339),
	decimalHook,
)

func decimalHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(decimal.Decimal{}) {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return decimal.NewFromString(v)
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	}
	return data, nil
}
