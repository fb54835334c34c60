package supplier

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"lendstock.GO/model/entity"
	historyRepo "lendstock.GO/model/repository/history"
	"lendstock.GO/store"
)

var ErrNotFound = errors.New("supplier not found")

type Repository struct {
	store   store.Store
	history *historyRepo.Repository
}

func NewRepository(st store.Store, history *historyRepo.Repository) *Repository {
	return &Repository{store: st, history: history}
}

func (r *Repository) All() []entity.Supplier {
	return store.Load(r.store, store.KeySuppliers, []entity.Supplier{})
}

func (r *Repository) Find(id string) (*entity.Supplier, error) {
	for _, s := range r.All() {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

// NameOf resolves a supplier id for display, placeholder on dangling refs.
func (r *Repository) NameOf(id string) string {
	if s, err := r.Find(id); err == nil {
		return s.Name
	}
	return entity.PlaceholderName
}

func (r *Repository) Add(in entity.Supplier, actor string) (entity.Supplier, error) {
	if !r.store.IsAvailable() {
		return entity.Supplier{}, store.ErrUnavailable
	}
	in.ID = uuid.NewString()
	suppliers := append(r.All(), in)
	if err := store.Save(r.store, store.KeySuppliers, suppliers); err != nil {
		return entity.Supplier{}, err
	}
	_, err := r.history.Append(entity.ActionAdd, entity.EntitySupplier, in.ID, in.Name,
		fmt.Sprintf("Supplier %q created", in.Name), actor)
	return in, err
}

func (r *Repository) Update(s entity.Supplier, actor string) error {
	if !r.store.IsAvailable() {
		return store.ErrUnavailable
	}
	suppliers := r.All()
	found := false
	for i := range suppliers {
		if suppliers[i].ID == s.ID {
			suppliers[i] = s
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}
	if err := store.Save(r.store, store.KeySuppliers, suppliers); err != nil {
		return err
	}
	_, err := r.history.Append(entity.ActionUpdate, entity.EntitySupplier, s.ID, s.Name,
		fmt.Sprintf("Supplier %q updated", s.Name), actor)
	return err
}

func (r *Repository) Delete(id string, actor string) error {
	if !r.store.IsAvailable() {
		return store.ErrUnavailable
	}
	suppliers := r.All()
	idx := -1
	for i := range suppliers {
		if suppliers[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}
	deleted := suppliers[idx]
	suppliers = append(suppliers[:idx], suppliers[idx+1:]...)
	if err := store.Save(r.store, store.KeySuppliers, suppliers); err != nil {
		return err
	}
	_, err := r.history.Append(entity.ActionDelete, entity.EntitySupplier, deleted.ID, deleted.Name,
		fmt.Sprintf("Supplier %q deleted", deleted.Name), actor)
	return err
}
