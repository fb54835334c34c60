package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"lendstock.GO/core/events"
	"lendstock.GO/model/entity"
	"lendstock.GO/store"
)

var ErrNotFound = errors.New("notification not found")

// DefaultRecentLimit caps Recent when the caller passes no positive limit.
const DefaultRecentLimit = 5

// Repository owns the notification list (newest first) and broadcasts a
// change signal after every list mutation so observers can refresh without
// polling the store.
type Repository struct {
	store store.Store
	bus   *events.Bus
}

func NewRepository(st store.Store, bus *events.Bus) *Repository {
	return &Repository{store: st, bus: bus}
}

func (r *Repository) All() []entity.NotificationRecord {
	return store.Load(r.store, store.KeyNotifications, []entity.NotificationRecord{})
}

// Add prepends a new unread notification.
func (r *Repository) Add(typ, title, message, entityID, entityType, createdBy string) (entity.NotificationRecord, error) {
	if !r.store.IsAvailable() {
		return entity.NotificationRecord{}, store.ErrUnavailable
	}
	rec := entity.NotificationRecord{
		ID:         uuid.NewString(),
		Type:       typ,
		Title:      title,
		Message:    message,
		IsRead:     false,
		EntityID:   entityID,
		EntityType: entityType,
		CreatedBy:  createdBy,
		Timestamp:  time.Now(),
	}
	records := append([]entity.NotificationRecord{rec}, r.All()...)
	if err := store.Save(r.store, store.KeyNotifications, records); err != nil {
		return entity.NotificationRecord{}, err
	}
	r.bus.Publish(events.NotificationsChanged)
	return rec, nil
}

func (r *Repository) MarkRead(id string) error {
	if !r.store.IsAvailable() {
		return store.ErrUnavailable
	}
	records := r.All()
	found := false
	for i := range records {
		if records[i].ID == id {
			records[i].IsRead = true
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}
	if err := store.Save(r.store, store.KeyNotifications, records); err != nil {
		return err
	}
	r.bus.Publish(events.NotificationsChanged)
	return nil
}

func (r *Repository) MarkAllRead() error {
	if !r.store.IsAvailable() {
		return store.ErrUnavailable
	}
	records := r.All()
	for i := range records {
		records[i].IsRead = true
	}
	if err := store.Save(r.store, store.KeyNotifications, records); err != nil {
		return err
	}
	r.bus.Publish(events.NotificationsChanged)
	return nil
}

func (r *Repository) Delete(id string) error {
	if !r.store.IsAvailable() {
		return store.ErrUnavailable
	}
	records := r.All()
	idx := -1
	for i := range records {
		if records[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}
	records = append(records[:idx], records[idx+1:]...)
	if err := store.Save(r.store, store.KeyNotifications, records); err != nil {
		return err
	}
	r.bus.Publish(events.NotificationsChanged)
	return nil
}

func (r *Repository) UnreadCount() int {
	n := 0
	for _, rec := range r.All() {
		if !rec.IsRead {
			n++
		}
	}
	return n
}

// Recent returns the newest records for dropdown display.
func (r *Repository) Recent(limit int) []entity.NotificationRecord {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	records := r.All()
	if len(records) > limit {
		records = records[:limit]
	}
	return records
}

// HasOverdueFor reports whether an overdue notification already references
// the given borrow id. The sweep uses this to keep overdue alerts unique.
func (r *Repository) HasOverdueFor(borrowID string) bool {
	for _, rec := range r.All() {
		if rec.Type == entity.NotifyOverdue && rec.EntityID == borrowID {
			return true
		}
	}
	return false
}
