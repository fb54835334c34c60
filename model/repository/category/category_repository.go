package category

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"lendstock.GO/model/entity"
	historyRepo "lendstock.GO/model/repository/history"
	"lendstock.GO/store"
)

var ErrNotFound = errors.New("category not found")

type Repository struct {
	store   store.Store
	history *historyRepo.Repository
}

func NewRepository(st store.Store, history *historyRepo.Repository) *Repository {
	return &Repository{store: st, history: history}
}

func (r *Repository) All() []entity.Category {
	return store.Load(r.store, store.KeyCategories, []entity.Category{})
}

func (r *Repository) Find(id string) (*entity.Category, error) {
	for _, c := range r.All() {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// NameOf resolves a category id for display. Dangling references resolve to
// the placeholder, not an error.
func (r *Repository) NameOf(id string) string {
	if c, err := r.Find(id); err == nil {
		return c.Name
	}
	return entity.PlaceholderName
}

// Add creates the category and logs one history record.
func (r *Repository) Add(in entity.Category, actor string) (entity.Category, error) {
	if !r.store.IsAvailable() {
		return entity.Category{}, store.ErrUnavailable
	}
	in.ID = uuid.NewString()
	categories := append(r.All(), in)
	if err := store.Save(r.store, store.KeyCategories, categories); err != nil {
		return entity.Category{}, err
	}
	_, err := r.history.Append(entity.ActionAdd, entity.EntityCategory, in.ID, in.Name,
		fmt.Sprintf("Category %q created", in.Name), actor)
	return in, err
}

func (r *Repository) Update(c entity.Category, actor string) error {
	if !r.store.IsAvailable() {
		return store.ErrUnavailable
	}
	categories := r.All()
	found := false
	for i := range categories {
		if categories[i].ID == c.ID {
			categories[i] = c
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}
	if err := store.Save(r.store, store.KeyCategories, categories); err != nil {
		return err
	}
	_, err := r.history.Append(entity.ActionUpdate, entity.EntityCategory, c.ID, c.Name,
		fmt.Sprintf("Category %q updated", c.Name), actor)
	return err
}

// Delete removes the category. Items keep their categoryId; reads fall back
// to the placeholder name.
func (r *Repository) Delete(id string, actor string) error {
	if !r.store.IsAvailable() {
		return store.ErrUnavailable
	}
	categories := r.All()
	idx := -1
	for i := range categories {
		if categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}
	deleted := categories[idx]
	categories = append(categories[:idx], categories[idx+1:]...)
	if err := store.Save(r.store, store.KeyCategories, categories); err != nil {
		return err
	}
	_, err := r.history.Append(entity.ActionDelete, entity.EntityCategory, deleted.ID, deleted.Name,
		fmt.Sprintf("Category %q deleted", deleted.Name), actor)
	return err
}
