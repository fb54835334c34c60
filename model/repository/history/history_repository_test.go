package history

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lendstock.GO/model/entity"
	"lendstock.GO/store"
)

func testRepo(t *testing.T) *Repository {
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
	return NewRepository(st)
}

func TestAppend_NewestFirst(t *testing.T) {
	r := testRepo(t)
	if _, err := r.Append(entity.ActionAdd, entity.EntityItem, "i1", "Mat", "Added item", "admin"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := r.Append(entity.ActionUpdate, entity.EntityItem, "i1", "Mat", "Updated item details", "admin"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	all := r.All()
	if len(all) != 2 {
		t.Fatalf("len(All) = %d, want 2", len(all))
	}
	if all[0].Action != entity.ActionUpdate {
		t.Errorf("newest record action = %q, want update first", all[0].Action)
	}
	if all[0].ID == "" || all[0].Timestamp.IsZero() {
		t.Error("record missing generated id or timestamp")
	}
}

func TestForEntity(t *testing.T) {
	r := testRepo(t)
	r.Append(entity.ActionAdd, entity.EntityItem, "i1", "Mat", "", "admin")
	r.Append(entity.ActionAdd, entity.EntityItem, "i2", "Rope", "", "admin")
	r.Append(entity.ActionDelete, entity.EntityItem, "i1", "Mat", "", "admin")

	got := r.ForEntity("i1")
	if len(got) != 2 {
		t.Fatalf("ForEntity = %d records, want 2", len(got))
	}
	for _, rec := range got {
		if rec.EntityID != "i1" {
			t.Errorf("record for %q leaked in", rec.EntityID)
		}
	}
}

func TestFilter(t *testing.T) {
	r := testRepo(t)
	r.Append(entity.ActionAdd, entity.EntityItem, "i1", "Dumbbell Set", "Added item with quantity: 10", "admin")
	r.Append(entity.ActionBorrow, entity.EntityItem, "i1", "Dumbbell Set", "Borrowed 2 units by Ana", "coach")
	r.Append(entity.ActionAdd, entity.EntityCategory, "c1", "Strength", "Category created", "admin")

	if got := r.Filter(FilterOptions{Action: entity.ActionBorrow}); len(got) != 1 || got[0].PerformedBy != "coach" {
		t.Errorf("Filter by action = %+v", got)
	}
	if got := r.Filter(FilterOptions{EntityType: entity.EntityCategory}); len(got) != 1 {
		t.Errorf("Filter by entity type = %d records, want 1", len(got))
	}
	if got := r.Filter(FilterOptions{PerformedBy: "admin"}); len(got) != 2 {
		t.Errorf("Filter by performer = %d records, want 2", len(got))
	}
	if got := r.Filter(FilterOptions{Search: "ana"}); len(got) != 1 {
		t.Errorf("Filter by search = %d records, want 1", len(got))
	}
	if got := r.Filter(FilterOptions{From: time.Now().Add(time.Hour)}); len(got) != 0 {
		t.Errorf("Filter with future From = %d records, want 0", len(got))
	}
}

func TestExportCSV(t *testing.T) {
	r := testRepo(t)
	r.Append(entity.ActionAdd, entity.EntityItem, "i1", "Mat, blue", "Added item", "admin")

	var buf bytes.Buffer
	if err := r.ExportCSV(&buf); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("CSV lines = %d, want header + 1 row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "timestamp,action") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], `"Mat, blue"`) {
		t.Errorf("row does not quote comma value: %q", lines[1])
	}
}

func TestPrune(t *testing.T) {
	r := testRepo(t)
	for i := 0; i < 5; i++ {
		r.Append(entity.ActionAdd, entity.EntityItem, "i1", "Mat", "", "admin")
	}
	removed, err := r.Prune(3)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if len(r.All()) != 3 {
		t.Errorf("len after prune = %d, want 3", len(r.All()))
	}
	// under the cap: no-op
	if removed, _ := r.Prune(10); removed != 0 {
		t.Errorf("prune under cap removed %d", removed)
	}
}
