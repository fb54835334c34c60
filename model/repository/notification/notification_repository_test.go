package notification

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lendstock.GO/core/events"
	"lendstock.GO/model/entity"
	"lendstock.GO/store"
)

func testRepo(t *testing.T) (*Repository, *int) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	st, err := store.NewGormStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	bus := events.NewBus()
	broadcasts := 0
	bus.Subscribe(func(topic string) {
		if topic == events.NotificationsChanged {
			broadcasts++
		}
	})
	return NewRepository(st, bus), &broadcasts
}

func add(t *testing.T, r *Repository, typ, entityID string) entity.NotificationRecord {
	t.Helper()
	rec, err := r.Add(typ, "title", "message", entityID, entity.EntityBorrow, "admin")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	return rec
}

func TestAdd_PrependsUnread(t *testing.T) {
	r, broadcasts := testRepo(t)
	add(t, r, entity.NotifyBorrow, "b1")
	second := add(t, r, entity.NotifyReturn, "b1")

	all := r.All()
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].ID != second.ID {
		t.Error("newest notification is not first")
	}
	if all[0].IsRead {
		t.Error("new notification created as read")
	}
	if *broadcasts != 2 {
		t.Errorf("broadcasts = %d, want 2", *broadcasts)
	}
}

func TestMarkReadAndUnreadCount(t *testing.T) {
	r, broadcasts := testRepo(t)
	a := add(t, r, entity.NotifyBorrow, "b1")
	add(t, r, entity.NotifyOverdue, "b2")

	if got := r.UnreadCount(); got != 2 {
		t.Fatalf("UnreadCount = %d, want 2", got)
	}
	if err := r.MarkRead(a.ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if got := r.UnreadCount(); got != 1 {
		t.Errorf("UnreadCount after MarkRead = %d, want 1", got)
	}
	if err := r.MarkRead("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("MarkRead missing = %v, want ErrNotFound", err)
	}

	if err := r.MarkAllRead(); err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	if got := r.UnreadCount(); got != 0 {
		t.Errorf("UnreadCount after MarkAllRead = %d, want 0", got)
	}
	// add + add + markread + markallread, the failed markread does not broadcast
	if *broadcasts != 4 {
		t.Errorf("broadcasts = %d, want 4", *broadcasts)
	}
}

func TestDelete(t *testing.T) {
	r, _ := testRepo(t)
	a := add(t, r, entity.NotifyBorrow, "b1")
	if err := r.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(r.All()) != 0 {
		t.Error("notification survived delete")
	}
	if err := r.Delete(a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestRecent_Limit(t *testing.T) {
	r, _ := testRepo(t)
	for i := 0; i < 8; i++ {
		add(t, r, entity.NotifyBorrow, "b")
	}
	if got := r.Recent(3); len(got) != 3 {
		t.Errorf("Recent(3) = %d, want 3", len(got))
	}
	if got := r.Recent(0); len(got) != DefaultRecentLimit {
		t.Errorf("Recent(0) = %d, want default %d", len(got), DefaultRecentLimit)
	}
}

func TestHasOverdueFor(t *testing.T) {
	r, _ := testRepo(t)
	add(t, r, entity.NotifyOverdue, "b1")
	add(t, r, entity.NotifyBorrow, "b2")
	if !r.HasOverdueFor("b1") {
		t.Error("HasOverdueFor(b1) = false")
	}
	if r.HasOverdueFor("b2") {
		t.Error("borrow-type notification counted as overdue")
	}
}
