package item

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lendstock.GO/model/entity"
	categoryRepo "lendstock.GO/model/repository/category"
	historyRepo "lendstock.GO/model/repository/history"
	notificationRepo "lendstock.GO/model/repository/notification"
	supplierRepo "lendstock.GO/model/repository/supplier"
	"lendstock.GO/store"
)

var (
	ErrNotFound = errors.New("item not found")
	ErrInvalid  = errors.New("item is missing required fields")
)

// Repository owns the inventory collection. Item.Status and the
// categoryName/supplierName snapshots are recomputed on every write; between
// writes they can go stale (threshold change, category rename) until
// RecomputeAll or the next save of that item.
type Repository struct {
	store         store.Store
	history       *historyRepo.Repository
	categories    *categoryRepo.Repository
	suppliers     *supplierRepo.Repository
	notifications *notificationRepo.Repository
}

func NewRepository(
	st store.Store,
	history *historyRepo.Repository,
	categories *categoryRepo.Repository,
	suppliers *supplierRepo.Repository,
	notifications *notificationRepo.Repository,
) *Repository {
	return &Repository{
		store:         st,
		history:       history,
		categories:    categories,
		suppliers:     suppliers,
		notifications: notifications,
	}
}

func (r *Repository) All() []entity.Item {
	return store.Load(r.store, store.KeyInventory, []entity.Item{})
}

func (r *Repository) Find(id string) (*entity.Item, error) {
	for _, it := range r.All() {
		if it.ID == id {
			return &it, nil
		}
	}
	return nil, ErrNotFound
}

// snapshot refreshes the derived fields on one item against the current
// settings and reference data.
func (r *Repository) snapshot(it *entity.Item, settings entity.Settings) {
	it.Status = entity.DeriveStatus(it.Quantity, settings.LowStockThreshold)
	it.CategoryName = r.categories.NameOf(it.CategoryID)
	it.SupplierName = r.suppliers.NameOf(it.SupplierID)
}

// alertOnStockDrop emits one low_stock notification when a save moves the
// item into Low Stock or Out of Stock. Steady-state low quantities stay
// silent; only the transition alerts.
func (r *Repository) alertOnStockDrop(prevStatus string, it entity.Item, actor string) {
	if it.Status == prevStatus || it.Status == entity.StatusInStock {
		return
	}
	title := "Low Stock"
	if it.Status == entity.StatusOutOfStock {
		title = "Out of Stock"
	}
	_, _ = r.notifications.Add(entity.NotifyLowStock, title,
		fmt.Sprintf("%s is down to %d unit(s)", it.Name, it.Quantity),
		it.ID, entity.EntityItem, actor)
}

// Add creates the item, snapshots its derived fields and logs one history
// record.
func (r *Repository) Add(in entity.Item, settings entity.Settings, actor string) (entity.Item, error) {
	if in.Name == "" {
		return entity.Item{}, ErrInvalid
	}
	if !r.store.IsAvailable() {
		return entity.Item{}, store.ErrUnavailable
	}
	now := time.Now()
	in.ID = uuid.NewString()
	in.CreatedAt = now
	in.UpdatedAt = now
	r.snapshot(&in, settings)

	items := append(r.All(), in)
	if err := store.Save(r.store, store.KeyInventory, items); err != nil {
		return entity.Item{}, err
	}
	if _, err := r.history.Append(entity.ActionAdd, entity.EntityItem, in.ID, in.Name,
		fmt.Sprintf("Added item with quantity: %d", in.Quantity), actor); err != nil {
		return entity.Item{}, err
	}
	r.alertOnStockDrop(entity.StatusInStock, in, actor)
	return in, nil
}

// Update replaces the stored item, re-stamps updated_at, re-snapshots the
// derived fields and logs one history record.
func (r *Repository) Update(it entity.Item, settings entity.Settings, actor string) error {
	if !r.store.IsAvailable() {
		return store.ErrUnavailable
	}
	items := r.All()
	idx := -1
	for i := range items {
		if items[i].ID == it.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}
	prevStatus := items[idx].Status
	it.CreatedAt = items[idx].CreatedAt
	it.UpdatedAt = time.Now()
	r.snapshot(&it, settings)
	items[idx] = it

	if err := store.Save(r.store, store.KeyInventory, items); err != nil {
		return err
	}
	if _, err := r.history.Append(entity.ActionUpdate, entity.EntityItem, it.ID, it.Name,
		"Updated item details", actor); err != nil {
		return err
	}
	r.alertOnStockDrop(prevStatus, it, actor)
	return nil
}

// Delete removes the item. Borrow records referencing it keep their itemId.
func (r *Repository) Delete(id string, actor string) error {
	if !r.store.IsAvailable() {
		return store.ErrUnavailable
	}
	items := r.All()
	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}
	deleted := items[idx]
	items = append(items[:idx], items[idx+1:]...)
	if err := store.Save(r.store, store.KeyInventory, items); err != nil {
		return err
	}
	_, err := r.history.Append(entity.ActionDelete, entity.EntityItem, deleted.ID, deleted.Name,
		"Deleted item", actor)
	return err
}

// RecomputeAll re-snapshots status and denormalized names on every stored
// item against the current settings. Use after a threshold change or a
// category/supplier rename instead of re-saving items one by one. Logs a
// single history record for the batch and returns how many items changed.
func (r *Repository) RecomputeAll(settings entity.Settings, actor string) (int, error) {
	if !r.store.IsAvailable() {
		return 0, store.ErrUnavailable
	}
	items := r.All()
	changed := 0
	for i := range items {
		before := items[i]
		r.snapshot(&items[i], settings)
		if items[i].Status != before.Status ||
			items[i].CategoryName != before.CategoryName ||
			items[i].SupplierName != before.SupplierName {
			items[i].UpdatedAt = time.Now()
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := store.Save(r.store, store.KeyInventory, items); err != nil {
		return 0, err
	}
	_, err := r.history.Append(entity.ActionUpdate, entity.EntityItem, "", "inventory",
		fmt.Sprintf("Recomputed status and names on %d item(s)", changed), actor)
	return changed, err
}

// LowStock returns items currently at or below the low band, a read-side
// projection for the dashboard alert.
func (r *Repository) LowStock() []entity.Item {
	var out []entity.Item
	for _, it := range r.All() {
		if it.Status == entity.StatusLowStock || it.Status == entity.StatusOutOfStock {
			out = append(out, it)
		}
	}
	return out
}
