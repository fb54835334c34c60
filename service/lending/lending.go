package lending

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lendstock.GO/model/entity"
	historyRepo "lendstock.GO/model/repository/history"
	itemRepo "lendstock.GO/model/repository/item"
	notificationRepo "lendstock.GO/model/repository/notification"
	"lendstock.GO/store"
)

// Distinguishable failure modes of the lifecycle engine. None of them leave
// partial state behind: every check runs before the first write.
var (
	ErrMissingFields     = errors.New("borrow is missing required fields")
	ErrInvalidQuantity   = errors.New("borrow quantity must be positive")
	ErrItemNotFound      = errors.New("item not found")
	ErrInsufficientStock = errors.New("not enough stock to borrow")
	ErrBorrowNotFound    = errors.New("borrow record not found")
	ErrAlreadyReturned   = errors.New("item has already been returned")
	ErrNotAuthorized     = errors.New("only the user who processed this borrow can return it")
)

// Service is the borrow/return state machine. Stock bookkeeping goes through
// the item repository so the implicit update history record and the status
// re-snapshot happen exactly as on a direct item edit.
type Service struct {
	store         store.Store
	items         *itemRepo.Repository
	history       *historyRepo.Repository
	notifications *notificationRepo.Repository
}

func NewService(
	st store.Store,
	items *itemRepo.Repository,
	history *historyRepo.Repository,
	notifications *notificationRepo.Repository,
) *Service {
	return &Service{store: st, items: items, history: history, notifications: notifications}
}

// BorrowInput carries the caller-supplied fields of a new loan.
type BorrowInput struct {
	ItemID             string
	BorrowerName       string
	BorrowerEmail      string
	BorrowerPhone      string
	QuantityBorrowed   int
	ExpectedReturnDate time.Time
	Notes              string
}

func (s *Service) All() []entity.BorrowRecord {
	return store.Load(s.store, store.KeyBorrows, []entity.BorrowRecord{})
}

func (s *Service) Find(id string) (*entity.BorrowRecord, error) {
	for _, b := range s.All() {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, ErrBorrowNotFound
}

// CreateBorrow opens a loan: validates, creates the record in state borrowed,
// decrements the item's stock (re-snapshotting its status) and emits the
// borrow history record and notification.
func (s *Service) CreateBorrow(in BorrowInput, settings entity.Settings, actor string) (entity.BorrowRecord, error) {
	if in.ItemID == "" || in.BorrowerName == "" || in.ExpectedReturnDate.IsZero() {
		return entity.BorrowRecord{}, ErrMissingFields
	}
	if in.QuantityBorrowed <= 0 {
		return entity.BorrowRecord{}, ErrInvalidQuantity
	}
	if !s.store.IsAvailable() {
		return entity.BorrowRecord{}, store.ErrUnavailable
	}
	it, err := s.items.Find(in.ItemID)
	if err != nil {
		return entity.BorrowRecord{}, ErrItemNotFound
	}
	if in.QuantityBorrowed > it.Quantity {
		return entity.BorrowRecord{}, ErrInsufficientStock
	}

	now := time.Now()
	rec := entity.BorrowRecord{
		ID:                 uuid.NewString(),
		ItemID:             it.ID,
		ItemName:           it.Name,
		BorrowerName:       in.BorrowerName,
		BorrowerEmail:      in.BorrowerEmail,
		BorrowerPhone:      in.BorrowerPhone,
		QuantityBorrowed:   in.QuantityBorrowed,
		BorrowDate:         now,
		ExpectedReturnDate: in.ExpectedReturnDate,
		Status:             entity.BorrowStatusBorrowed,
		Notes:              in.Notes,
		BorrowedBy:         actor,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	borrows := append(s.All(), rec)
	if err := store.Save(s.store, store.KeyBorrows, borrows); err != nil {
		return entity.BorrowRecord{}, err
	}

	updated := *it
	updated.Quantity -= in.QuantityBorrowed
	if err := s.items.Update(updated, settings, actor); err != nil {
		return entity.BorrowRecord{}, err
	}

	if _, err := s.history.Append(entity.ActionBorrow, entity.EntityItem, it.ID, it.Name,
		fmt.Sprintf("Borrowed %d units by %s", in.QuantityBorrowed, in.BorrowerName), actor); err != nil {
		return entity.BorrowRecord{}, err
	}
	if _, err := s.notifications.Add(entity.NotifyBorrow, "Item Borrowed",
		fmt.Sprintf("%s borrowed %d units of %s", in.BorrowerName, in.QuantityBorrowed, it.Name),
		rec.ID, entity.EntityBorrow, actor); err != nil {
		return entity.BorrowRecord{}, err
	}
	return rec, nil
}

// ReturnBorrow closes a loan. Only the user recorded as borrowedBy may close
// it; returned is terminal.
func (s *Service) ReturnBorrow(borrowID, returnNotes string, settings entity.Settings, actor string) (entity.BorrowRecord, error) {
	if !s.store.IsAvailable() {
		return entity.BorrowRecord{}, store.ErrUnavailable
	}
	borrows := s.All()
	idx := -1
	for i := range borrows {
		if borrows[i].ID == borrowID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return entity.BorrowRecord{}, ErrBorrowNotFound
	}
	rec := borrows[idx]
	if rec.Status == entity.BorrowStatusReturned {
		return entity.BorrowRecord{}, ErrAlreadyReturned
	}
	if rec.BorrowedBy != actor {
		return entity.BorrowRecord{}, ErrNotAuthorized
	}

	now := time.Now()
	rec.Status = entity.BorrowStatusReturned
	rec.ActualReturnDate = &now
	rec.ReturnedBy = actor
	if returnNotes != "" {
		rec.Notes = returnNotes
	}
	rec.UpdatedAt = now
	borrows[idx] = rec
	if err := store.Save(s.store, store.KeyBorrows, borrows); err != nil {
		return entity.BorrowRecord{}, err
	}

	// Restock. The item may have been deleted since the borrow; the return
	// still completes, there is just nothing to put the quantity back on.
	if it, err := s.items.Find(rec.ItemID); err == nil {
		updated := *it
		updated.Quantity += rec.QuantityBorrowed
		if err := s.items.Update(updated, settings, actor); err != nil {
			return entity.BorrowRecord{}, err
		}
		if _, err := s.history.Append(entity.ActionReturn, entity.EntityItem, it.ID, it.Name,
			fmt.Sprintf("Returned %d units by %s", rec.QuantityBorrowed, rec.BorrowerName), actor); err != nil {
			return entity.BorrowRecord{}, err
		}
		if _, err := s.notifications.Add(entity.NotifyReturn, "Item Returned",
			fmt.Sprintf("%s returned %d units of %s", rec.BorrowerName, rec.QuantityBorrowed, it.Name),
			rec.ID, entity.EntityBorrow, actor); err != nil {
			return entity.BorrowRecord{}, err
		}
	}
	return rec, nil
}

// Overdue returns loans currently marked overdue, newest borrow first.
func (s *Service) Overdue() []entity.BorrowRecord {
	var out []entity.BorrowRecord
	for _, b := range s.All() {
		if b.Status == entity.BorrowStatusOverdue {
			out = append(out, b)
		}
	}
	return out
}

// ActiveForItem returns the non-returned loans against one item.
func (s *Service) ActiveForItem(itemID string) []entity.BorrowRecord {
	var out []entity.BorrowRecord
	for _, b := range s.All() {
		if b.ItemID == itemID && b.Status != entity.BorrowStatusReturned {
			out = append(out, b)
		}
	}
	return out
}
